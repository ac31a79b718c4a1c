// Package tui is the terminal front-end of the cart widget. It translates key
// and input events into widget commands and renders the controller's view
// models; no business logic lives here.
package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Badge    lipgloss.Style
	Total    lipgloss.Style
	Notice   lipgloss.Style
	ErrLine  lipgloss.Style
	Pane     lipgloss.Style
	Overlay  lipgloss.Style
	HelpLine lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.Color("#8BC34A")
	warn := lipgloss.Color("#FFC107")
	danger := lipgloss.Color("#e53935")
	muted := lipgloss.Color("#6c757d")
	border := lipgloss.Color("#2a3850")

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header: lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Badge: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#101F38")).
			Background(accent).
			Padding(0, 1),
		Total:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Notice:  lipgloss.NewStyle().Bold(true).Foreground(warn).Border(lipgloss.RoundedBorder()).BorderForeground(warn).Padding(0, 2),
		ErrLine: lipgloss.NewStyle().Foreground(danger),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		HelpLine: lipgloss.NewStyle().Foreground(muted),
	}
}
