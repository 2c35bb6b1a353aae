package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/types"
)

var (
	projectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	apiStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	methodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// RenderProjectTree renders projects and their API definitions as a tree.
func RenderProjectTree(projects []types.Project, apisByProject map[string][]types.Api) string {
	if len(projects) == 0 {
		return keyStyle.Render("No projects found")
	}

	root := tree.Root(Styles.Title.Render("Projects"))
	total := 0
	for _, p := range projects {
		label := fmt.Sprintf("%s %s", projectStyle.Render(p.Name), keyStyle.Render("("+p.ID+")"))
		node := tree.Root(label)
		for _, a := range apisByProject[p.ID] {
			node.Child(renderApiNode(a))
			total++
		}
		root.Child(node)
	}

	summary := keyStyle.Render(fmt.Sprintf("\n%d project(s), %d api(s)", len(projects), total))
	return root.String() + summary
}

// RenderApiList renders a flat list of API definitions.
func RenderApiList(apis []types.Api) string {
	if len(apis) == 0 {
		return keyStyle.Render("No apis found")
	}

	root := tree.Root(Styles.Title.Render("APIs"))
	for _, a := range apis {
		root.Child(renderApiNode(a))
	}
	return root.String()
}

func renderApiNode(a types.Api) *tree.Tree {
	label := fmt.Sprintf("%s %s %s",
		methodStyle.Render(a.Method),
		apiStyle.Render(a.URL),
		keyStyle.Render(a.Name),
	)
	node := tree.Root(label)
	node.Child(keyStyle.Render("id: ") + valueStyle.Render(a.ID))
	if a.Description != "" {
		node.Child(keyStyle.Render("desc: ") + valueStyle.Render(a.Description))
	}
	return node
}
