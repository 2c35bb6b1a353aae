package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/client"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/config"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

var (
	loginServer   string
	loginUsername string
)

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "authenticate with the UAPI server",
	Long: `Authenticate with the UAPI management server and save credentials locally.

Your token is stored in ~/.uapictl/config.json and used automatically
for all subsequent commands until it expires or you log out.`,
	Example: `  # Login to default server (localhost:3000)
  $ uapictl login

  # Login to a custom server with a username
  $ uapictl login -s http://api.example.com:3000 -u admin`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginServer, "server", "s", "", "server address")
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username for authentication")
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}
	if loginServer != "" {
		cfg.Server = loginServer
	}

	if loginUsername == "" {
		prompt := &survey.Input{Message: "Username:"}
		if err := survey.AskOne(prompt, &loginUsername, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read username: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	var password string
	prompt := &survey.Password{Message: "Password:"}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read password: %v", err)
		return fmt.Errorf("input failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, "")
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Connecting to %s...", cfg.Server)

	data, err := apiClient.Login(ctx, loginUsername, password)
	if err != nil {
		ui.PrintErrorBox("Login Failed", err.Error())
		return fmt.Errorf("authentication failed")
	}

	cfg.AccessToken = data.Token
	cfg.Username = data.User.Username
	cfg.UserID = data.User.ID
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save credentials: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccessBox("Login Successful",
		fmt.Sprintf("Logged in as %s (%s)", data.User.Username, data.User.Role))
	return nil
}
