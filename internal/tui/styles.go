package tui

import "github.com/charmbracelet/lipgloss"

var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	seriesFg  = lipgloss.Color("#38BDF8")
	faintFg   = lipgloss.Color("#4B5563")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	seriesStyle = lipgloss.NewStyle().Foreground(seriesFg)
	labelStyle  = lipgloss.NewStyle().Foreground(baseFg)
	faintStyle  = lipgloss.NewStyle().Foreground(faintFg)
)
