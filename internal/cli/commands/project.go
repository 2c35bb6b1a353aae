package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/client"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/config"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/types"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

var (
	projectCreateID   string
	projectCreateName string
)

// projectCmd groups project subcommands
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "list projects with their APIs",
	Example: `  # List all projects in a tree view
  $ uapictl project list`,
	RunE: runProjectList,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "create a project",
	Example: `  # Create a project
  $ uapictl project create --id shop --name "Shop backend"`,
	RunE: runProjectCreate,
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectCreateID, "id", "", "project identifier")
	projectCreateCmd.Flags().StringVar(&projectCreateName, "name", "", "project display name")
	_ = projectCreateCmd.MarkFlagRequired("id")
	_ = projectCreateCmd.MarkFlagRequired("name")

	projectListCmd.SilenceUsage = true
	projectCreateCmd.SilenceUsage = true

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
}

// authedClient builds an API client from the stored credentials.
func authedClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}
	if cfg.AccessToken == "" {
		ui.PrintError("not logged in, run 'uapictl login' first")
		return nil, fmt.Errorf("not authenticated")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}
	return apiClient, nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authedClient()
	if err != nil {
		return err
	}

	projects, err := apiClient.ListProjects(ctx)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("list failed")
	}

	apisByProject := make(map[string][]types.Api, len(projects))
	for _, p := range projects {
		apis, err := apiClient.ListApis(ctx, p.ID)
		if err != nil {
			ui.PrintError("failed to list apis of %s: %v", p.ID, err)
			return fmt.Errorf("list failed")
		}
		apisByProject[p.ID] = apis
	}

	fmt.Println(ui.RenderProjectTree(projects, apisByProject))
	return nil
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authedClient()
	if err != nil {
		return err
	}

	project, err := apiClient.CreateProject(ctx, projectCreateID, projectCreateName)
	if err != nil {
		ui.PrintErrorBox("Create Failed", err.Error())
		return fmt.Errorf("create failed")
	}

	ui.PrintSuccess("project %s created", project.ID)
	return nil
}
