package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the reader.
type Styles struct {
	Title     lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Meta      lipgloss.Style
	Banner    lipgloss.Style
	Heading   lipgloss.Style
	Quote     lipgloss.Style
	Code      lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpLabel lipgloss.Style
}

// DefaultStyles uses the accent color for headings and the selection.
func DefaultStyles(accent lipgloss.Color) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Item:      lipgloss.NewStyle().PaddingLeft(2),
		Selected:  lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(accent).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent),
		Meta:      lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("245")),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("203")).Padding(0, 1).MarginBottom(1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Quote:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")).Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1),
		Code:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		HelpKey:   lipgloss.NewStyle().Bold(true),
		HelpLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
