package tui

import "github.com/charmbracelet/lipgloss"

// Palette (ANSI 256).
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorCritical  = lipgloss.Color("196")
	ColorButton    = lipgloss.Color("57")
	ColorButtonFg  = lipgloss.Color("229")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared by every view.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	LinkStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Underline(true)

	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SelectedBoxStyle = BoxStyle.BorderForeground(ColorHighlight)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorButtonFg).
			Background(ColorButton).
			Padding(0, 2)
)
