// Package ui renders dashboard results for the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic and chart colors, shared by both themes.
var (
	Destructive = lipgloss.Color("#e53935")
	Positive    = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")

	ChartColors = []lipgloss.Color{
		lipgloss.Color("#e57373"),
		lipgloss.Color("#4db6ac"),
		lipgloss.Color("#5c7cfa"),
		lipgloss.Color("#ffd54f"),
		lipgloss.Color("#ff8a65"),
	}
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#dce0e5"),
	}
}

func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#8BC34A"),
		Accent:     lipgloss.Color("#4db6ac"),
		Muted:      lipgloss.Color("#8b95a7"),
		Border:     lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// DetectTheme picks the dark theme when COLORFGBG reports a dark background
// or NLPDASH_DARK_MODE=1.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && (bg >= 0 && bg <= 6 || bg == 8) {
			return DarkTheme()
		}
	}
	if os.Getenv("NLPDASH_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Key     lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	Original  lipgloss.Style // misspelled word
	Corrected lipgloss.Style

	DropZone       lipgloss.Style
	DropZoneActive lipgloss.Style
	Spinner        lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	zone := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
		Body:  lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:  lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true),

		Success: lipgloss.NewStyle().Foreground(Positive).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),

		Original:  lipgloss.NewStyle().Foreground(Destructive).Strikethrough(true),
		Corrected: lipgloss.NewStyle().Foreground(Positive).Bold(true),

		DropZone:       zone,
		DropZoneActive: zone.BorderForeground(theme.Accent).BorderStyle(lipgloss.ThickBorder()),
		Spinner:        lipgloss.NewStyle().Foreground(theme.Accent),
	}
}

// DefaultStyles uses the detected theme.
func DefaultStyles() Styles { return NewStyles(DetectTheme()) }
