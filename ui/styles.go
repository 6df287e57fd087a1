package ui

import "github.com/charmbracelet/lipgloss"

var (
	Muted       = lipgloss.Color("#8a8f98")
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
)

// Styles holds the text styles shared by the list, detail and search views.
type Styles struct {
	Heading  lipgloss.Style
	Title    lipgloss.Style
	Category lipgloss.Style
	Meta     lipgloss.Style
	Empty    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Italic(true),
		Meta:     lipgloss.NewStyle().Foreground(Muted),
		Empty:    lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:     lipgloss.NewStyle().Foreground(Muted),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
		Success:  lipgloss.NewStyle().Foreground(Success),
	}
}

// cardStyle frames a note in its display color.
func cardStyle(c Color, width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Lipgloss()).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width)
	}
	return s
}
