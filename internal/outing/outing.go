// Package outing models multi-stop outing plans and their aggregate
// comfort signal.
package outing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/comfrt/comfrt/internal/venue"
)

// Stop type tags. Free-form types are accepted; these are the ones the
// planner suggests.
var stopTypes = []string{"coffee", "lunch", "dinner", "drinks", "activity", "shopping"}

// defaultStopMinutes is assumed for stops without an explicit duration.
const defaultStopMinutes = 60

// Stop is one venue visit within an outing. Time is a 24-hour "HH:MM"
// string and Duration is in minutes.
type Stop struct {
	Type     string       `json:"type"`
	Time     string       `json:"time,omitempty"`
	Duration int          `json:"duration,omitempty"`
	Venue    *venue.Venue `json:"venue,omitempty"`

	// ComfortScore carries the score for stops saved without a full venue
	// record attached.
	ComfortScore int `json:"comfort_score,omitempty"`
}

// Outing is a planned sequence of stops.
type Outing struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	Stops        []Stop    `json:"stops"`
	TotalComfort int       `json:"total_comfort"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// stopScore resolves a stop's comfort score, preferring the attached venue.
func (s *Stop) stopScore() int {
	if s.Venue != nil && s.Venue.ComfortScore > 0 {
		return s.Venue.ComfortScore
	}
	return s.ComfortScore
}

// TotalComfort is the mean of the stops' comfort scores, rounded. Unscored
// stops (score 0) are excluded so a half-planned outing is not dragged down;
// with no scored stops the result is 0.
func TotalComfort(stops []Stop) int {
	sum, n := 0, 0
	for i := range stops {
		if score := stops[i].stopScore(); score > 0 {
			sum += score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// SuggestedStopTypes returns up to three stop types not yet in the plan.
// When every type is used it falls through to common follow-ups.
func SuggestedStopTypes(stops []Stop) []string {
	used := make(map[string]bool, len(stops))
	for i := range stops {
		used[strings.ToLower(stops[i].Type)] = true
	}
	var suggested []string
	for _, t := range stopTypes {
		if !used[t] {
			suggested = append(suggested, t)
		}
	}
	if len(suggested) == 0 {
		return []string{"dessert", "walk", "second coffee"}
	}
	if len(suggested) > 3 {
		suggested = suggested[:3]
	}
	return suggested
}

// TotalDuration sums stop durations in minutes, assuming an hour for stops
// without one.
func TotalDuration(stops []Stop) int {
	total := 0
	for i := range stops {
		d := stops[i].Duration
		if d == 0 {
			d = defaultStopMinutes
		}
		total += d
	}
	return total
}

// FormatDuration renders minutes as "45min", "2h" or "1h 30min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours, mins := minutes/60, minutes%60
	if mins > 0 {
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}
