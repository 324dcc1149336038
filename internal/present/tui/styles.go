package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	subtitleStyle = lipgloss.NewStyle().Faint(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	modelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("57")).
			Bold(true)

	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("238"))

	outputBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	placeholderStyle = lipgloss.NewStyle().Italic(true).Faint(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)
