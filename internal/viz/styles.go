package viz

import "github.com/charmbracelet/lipgloss"

// Shared TUI styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	CanvasStyle = lipgloss.NewStyle().Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(44)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	StatusRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	StatusStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	GraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
