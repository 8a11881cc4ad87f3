package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Padding(1, 2).Width(42)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
