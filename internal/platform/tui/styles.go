package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the hangman screens. The game core only
// reports result values; all coloring decisions live here.
var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWrong    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleRepeat   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleWord     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	styleWin      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleLoss     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleGallows  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)
