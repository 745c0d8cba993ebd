// Package tui is a read-only bubbletea browser over a pre-computed token
// stream from pkg/xmldiff.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorInsert = lipgloss.AdaptiveColor{Light: "#00AF87", Dark: "#00D787"}
	colorDelete = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F87"}
	colorChange = lipgloss.AdaptiveColor{Light: "#D78700", Dark: "#FFD75F"}

	colorText    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E4E4E4"}
	colorTextDim = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#6C6C6C"}
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	selectedStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true).PaddingLeft(1)
	unselectedStyle = lipgloss.NewStyle().Foreground(colorTextDim).PaddingLeft(1)

	detailStyle = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(1).MarginTop(1)

	helpStyle = lipgloss.NewStyle().Foreground(colorTextDim).MarginTop(1)
)

func editTypeStyle(editType string) lipgloss.Style {
	switch editType {
	case "INSERT":
		return lipgloss.NewStyle().Foreground(colorInsert)
	case "DELETE":
		return lipgloss.NewStyle().Foreground(colorDelete)
	default:
		return lipgloss.NewStyle().Foreground(colorChange)
	}
}
