package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/client"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/config"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

// logoutCmd is the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "revoke the current token",
	Long: `Revoke the stored token on the server and remove it locally.

The token becomes unusable immediately even if it has not expired.`,
	RunE: runLogout,
}

func init() {
	logoutCmd.SilenceUsage = true
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}
	if cfg.AccessToken == "" {
		ui.PrintInfo("not logged in")
		return nil
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	// 服务端吊销失败也要清掉本地令牌
	if err := apiClient.Logout(ctx); err != nil {
		ui.PrintError("server-side revocation failed: %v", err)
	}

	if err := cfg.Clear(); err != nil {
		ui.PrintError("failed to clear credentials: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("logged out")
	return nil
}
