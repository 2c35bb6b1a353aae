package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines the lipgloss styles used in the CLI
var Styles = struct {
	Bold       lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	SuccessBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Padding(0, 1).
		Width(56),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Width(56),
}
