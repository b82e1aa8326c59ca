package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Theme holds the styles used by text reports. The plain theme renders
// every string unchanged.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Number  lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme returns the styled theme for ModeStyled and the plain one otherwise.
func NewTheme(mode Mode) Theme {
	if mode != ModeStyled {
		plain := lipgloss.NewStyle()
		return Theme{
			Title: plain, Label: plain, Number: plain, Path: plain,
			Muted: plain, Success: plain, Warning: plain, Error: plain,
		}
	}

	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Label:   lipgloss.NewStyle().Foreground(ColorSecondary),
		Number:  lipgloss.NewStyle().Bold(true),
		Path:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
