package tui

import "github.com/charmbracelet/lipgloss"

// Styles controls how the board is drawn
type Styles struct {
	Tile    lipgloss.Style
	Moves   lipgloss.Style
	Win     lipgloss.Style
	Message lipgloss.Style
}

// DefaultStyles draws tiles in green and the win banner in red on the
// terminal's own background.
func DefaultStyles() Styles {
	return Styles{
		Tile:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Moves:   lipgloss.NewStyle().Bold(true),
		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
