package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	successColor.Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	errorColor.Printf("✗ %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	infoColor.Printf("ℹ %s\n", fmt.Sprintf(format, args...))
}

// PrintSuccessBox prints a bordered success panel
func PrintSuccessBox(title, body string) {
	content := Styles.Bold.Render(title) + "\n" + body
	fmt.Println(Styles.SuccessBox.Render(content))
}

// PrintErrorBox prints a bordered error panel
func PrintErrorBox(title, body string) {
	content := Styles.Bold.Render(title) + "\n" + body
	fmt.Println(Styles.ErrorBox.Render(content))
}
