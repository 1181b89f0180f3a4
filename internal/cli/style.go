// internal/cli/style.go
package cli

import "github.com/charmbracelet/lipgloss"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	nameStyle = lipgloss.NewStyle().Bold(true)
)

func okMark() string   { return okStyle.Render("✓") }
func failMark() string { return failStyle.Render("✗") }
