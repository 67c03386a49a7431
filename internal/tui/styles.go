package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the terminal viewer.
type Styles struct {
	Title  lipgloss.Style
	Canvas lipgloss.Style
	Button lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}
