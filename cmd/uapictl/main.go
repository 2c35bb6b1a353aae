package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/commands"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			ui.PrintError("%s", err.Error())
			fmt.Println("\nRun 'uapictl --help' for usage.")
		}
		os.Exit(1)
	}
}
