package timecomfort

import (
	"fmt"
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// Prediction is the crowd estimate for a single hour.
type Prediction struct {
	Level      string `json:"level"`
	Score      int    `json:"score"`
	Confidence int    `json:"confidence"`
}

// Window is a maximal run of quiet hours.
type Window struct {
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Label     string `json:"label"`
	Score     int    `json:"score"`
}

// HourComfort is one entry of the hourly comfort timeline.
type HourComfort struct {
	Hour int `json:"hour"`
	Prediction
	Label string `json:"label"`
}

const (
	quietScore    = 85
	moderateScore = 60
	busyScore     = 35

	// Confidence depends on whether a category-specific pattern matched.
	specificConfidence = 70
	defaultConfidence  = 40
)

// venuePattern selects the busy-hour pattern for a venue by exact category
// alias match, then partial match, falling back to the default pattern.
func venuePattern(v *venue.Venue) (pattern, string) {
	aliases := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		if c.Alias != "" {
			aliases = append(aliases, strings.ToLower(c.Alias))
		}
	}

	for _, alias := range aliases {
		if p, ok := timePatterns[alias]; ok && alias != defaultPattern {
			return p, alias
		}
	}

	for _, alias := range aliases {
		for _, key := range patternOrder {
			if strings.Contains(alias, key) || strings.Contains(key, alias) {
				return timePatterns[key], key
			}
		}
	}

	return timePatterns[defaultPattern], defaultPattern
}

// Predict estimates the crowd level for a venue at the given hour (0-23).
// Weekend adjustments shift or extend the category's busy window; the
// venue's own comfort score nudges the final score by up to 10 points.
func Predict(v *venue.Venue, hour int, isWeekend bool) Prediction {
	p, category := venuePattern(v)

	level := LevelModerate
	score := moderateScore

	if p.isQuiet(hour) {
		level = LevelQuiet
		score = quietScore
	} else if p.isBusy(hour) {
		level = LevelBusy
		score = busyScore
	}

	if isWeekend {
		if adj, ok := weekendAdjustments[category]; ok {
			if adj.shiftBusy > 0 && p.isBusy(hour-adj.shiftBusy) {
				level = LevelBusy
				score = 35
			}
			if adj.extendBusy > 0 && p.isBusy(hour-adj.extendBusy) {
				level = LevelBusy
				score = 40
			}
		}
	}

	// Venues with a strong (or weak) base comfort score pull the hourly
	// estimate up or down.
	baseComfort := v.ComfortScore
	if baseComfort == 0 {
		baseComfort = 60
	}
	if baseComfort >= 75 {
		score += 10
		if score > 100 {
			score = 100
		}
	} else if baseComfort < 50 {
		score -= 10
		if score < 0 {
			score = 0
		}
	}

	confidence := specificConfidence
	if category == defaultPattern {
		confidence = defaultConfidence
	}

	return Prediction{Level: level, Score: score, Confidence: confidence}
}

// BestTimes groups the venue's quiet hours (between 6:00 and 22:00) into
// maximal consecutive windows.
func BestTimes(v *venue.Venue) []Window {
	p, _ := venuePattern(v)

	var windows []Window
	windowStart := -1

	for hour := 6; hour <= 22; hour++ {
		quiet := p.isQuiet(hour)
		if quiet && windowStart < 0 {
			windowStart = hour
		} else if !quiet && windowStart >= 0 {
			windows = append(windows, newWindow(windowStart, hour-1))
			windowStart = -1
		}
	}
	if windowStart >= 0 {
		windows = append(windows, newWindow(windowStart, 22))
	}

	return windows
}

func newWindow(start, end int) Window {
	return Window{
		StartHour: start,
		EndHour:   end,
		Label:     formatWindow(start, end),
		Score:     quietScore,
	}
}

// HourlyComfort returns the per-hour prediction for the venue's waking
// hours (6:00-23:00).
func HourlyComfort(v *venue.Venue, isWeekend bool) []HourComfort {
	hours := make([]HourComfort, 0, 18)
	for hour := 6; hour <= 23; hour++ {
		hours = append(hours, HourComfort{
			Hour:       hour,
			Prediction: Predict(v, hour, isWeekend),
			Label:      FormatHour(hour),
		})
	}
	return hours
}

// Recommendation renders a one-line suggestion of when to visit.
func Recommendation(v *venue.Venue) string {
	windows := BestTimes(v)

	switch len(windows) {
	case 0:
		return "This venue tends to have consistent crowd levels throughout the day."
	case 1:
		return fmt.Sprintf("Best visited %s when it's typically quietest.", windows[0].Label)
	default:
		return fmt.Sprintf("Calmest %s or %s.", windows[0].Label, windows[1].Label)
	}
}

func formatWindow(start, end int) string {
	if start == end {
		return fmt.Sprintf("around %s", FormatHour(start))
	}
	return fmt.Sprintf("%s-%s", FormatHour(start), FormatHour(end))
}

// FormatHour renders a 24h hour in 12h clock form ("7am", "12pm", "9pm").
func FormatHour(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12am"
	case hour == 12:
		return "12pm"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
