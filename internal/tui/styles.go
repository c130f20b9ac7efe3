package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle         = lipgloss.NewStyle().Bold(true)
	selectedTitleStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	helperStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	seenMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	unseenMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)
