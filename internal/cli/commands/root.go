// Package commands contains the uapictl subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "uapictl",
	Short:   "UAPI management CLI",
	Version: version,
	Long: `A command-line tool for the UAPI management service. Authenticate once,
then browse and manage projects and API definitions from the terminal.`,
	Example: `  # Authenticate with the server
  $ uapictl login -s http://localhost:3000 -u admin

  # List projects with their APIs
  $ uapictl project list

  # Create a project
  $ uapictl project create --id shop --name "Shop backend"

  # List APIs of one project
  $ uapictl api list -p shop`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(fmt.Sprintf("uapictl version %s\n", version))
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(apiCmd)

	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}
