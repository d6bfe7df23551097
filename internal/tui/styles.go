package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the game screens.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	styleMarkA = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleMarkB = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	styleCursor = lipgloss.NewStyle().Reverse(true)

	styleGrid = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	styleIndex = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)

	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	styleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	styleTally = lipgloss.NewStyle().Faint(true)
)
