package ui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles used by the consultant form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Selected lipgloss.Style
	Popup    lipgloss.Style
}

// DefaultStyles returns the default form styling.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Label:    lipgloss.NewStyle().Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
	}
}
