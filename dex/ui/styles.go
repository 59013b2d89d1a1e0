package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	App   lipgloss.Style
	Title lipgloss.Style
	Name  lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
	Muted lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		App:   lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Name:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
