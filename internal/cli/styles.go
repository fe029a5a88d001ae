package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Status colors
	colorOK     = lipgloss.Color("#95E1A3") // Green
	colorWarn   = lipgloss.Color("#FFE66D") // Yellow
	colorAlert  = lipgloss.Color("#FF6B6B") // Red
	colorAccent = lipgloss.Color("#4ECDC4")
	colorMuted  = lipgloss.Color("#888888")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	alertStyle  = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
)
