package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	ownSenderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	peerSenderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	aiSenderStyle   = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(lipgloss.Color("13"))
)
