package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 2).
			MarginRight(1)
	cardLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	cardAlertStyle = cardValueStyle.Foreground(colorRed)

	reorderBadge = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	okBadge      = lipgloss.NewStyle().Foreground(colorGreen)
	inStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	outStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	helpStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle  = lipgloss.NewStyle().Foreground(colorTeal)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorLavender).
			Padding(0, 2)
)
