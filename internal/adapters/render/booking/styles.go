package booking

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	price     lipgloss.Style
	errorMsg  lipgloss.Style
	success   lipgloss.Style
	hint      lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	pending   lipgloss.Style
	confirmed lipgloss.Style
	completed lipgloss.Style
	cancelled lipgloss.Style
	requested lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		errorMsg:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		hint:      lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		confirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		cancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		requested: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
