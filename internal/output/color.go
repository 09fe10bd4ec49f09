// Package output provides styled terminal rendering helpers for comfrt.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorCalm is used for high comfort scores.
	ColorCalm = lipgloss.Color("#66bb6a")

	// ColorLively is used for low comfort scores.
	ColorLively = lipgloss.Color("#ef5350")

	// ColorModerate is used for mid-range comfort scores.
	ColorModerate = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers and venue names.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleCalm is used for comfortable scores and highlights.
	StyleCalm = lipgloss.NewStyle().
			Foreground(ColorCalm)

	// StyleLively is used for low scores and concerns.
	StyleLively = lipgloss.NewStyle().
			Foreground(ColorLively)

	// StyleModerate is used for mid-range scores.
	StyleModerate = lipgloss.NewStyle().
			Foreground(ColorModerate)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleChip is used for comfort attribute chips.
	StyleChip = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleCalm = plain
		StyleLively = plain
		StyleModerate = plain
		StyleMuted = plain
		StyleBold = plain
		StyleChip = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoDetectColor disables color when stdout is not a terminal.
func AutoDetectColor() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}

// ScoreStyle returns the style for a 0-100 comfort score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleCalm
	case score >= 40:
		return StyleModerate
	default:
		return StyleLively
	}
}
