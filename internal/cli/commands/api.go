package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

var apiListProject string

// apiCmd groups API subcommands
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "manage API definitions",
}

var apiListCmd = &cobra.Command{
	Use:   "list",
	Short: "list API definitions",
	Example: `  # List all APIs
  $ uapictl api list

  # List APIs of one project
  $ uapictl api list -p shop`,
	RunE: runApiList,
}

func init() {
	apiListCmd.Flags().StringVarP(&apiListProject, "project", "p", "", "limit to one project")
	apiListCmd.SilenceUsage = true
	apiCmd.AddCommand(apiListCmd)
}

func runApiList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authedClient()
	if err != nil {
		return err
	}

	apis, err := apiClient.ListApis(ctx, apiListProject)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("list failed")
	}

	fmt.Println(ui.RenderApiList(apis))
	return nil
}
