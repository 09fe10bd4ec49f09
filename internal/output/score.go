package output

import (
	"fmt"
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// ScoreBar renders a visual bar for a 0-100 comfort score.
// Example: "████████░░ 80/100"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s",
		ScoreStyle(score).Render(bar),
		StyleMuted.Render(fmt.Sprintf("%d/100", score)))
}

// Chips renders comfort attribute chips as a bracketed list.
// Example: "[Quiet] [Cozy] [WiFi]"
func Chips(attrs []venue.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = StyleChip.Render("[" + a.Label + "]")
	}
	return strings.Join(parts, " ")
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
