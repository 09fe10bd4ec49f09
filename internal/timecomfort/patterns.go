// Package timecomfort predicts when a venue is likely to be calmest from
// category-level busy/quiet hour patterns, with weekend adjustments.
package timecomfort

// Crowd levels for a given hour.
const (
	LevelQuiet    = "quiet"
	LevelModerate = "moderate"
	LevelBusy     = "busy"
)

// pattern describes which hours of the day a venue type runs quiet,
// moderate, or busy. Hours not listed default to moderate.
type pattern struct {
	quiet    []int
	moderate []int
	busy     []int
}

// patternOrder fixes the lookup order for partial category matches.
var patternOrder = []string{
	"coffee", "cafes", "restaurants", "italian", "japanese", "sushi",
	"breakfast_brunch", "bars", "pubs", "tea",
}

const defaultPattern = "default"

// timePatterns maps venue categories to their typical daily rhythm
// (24h clock).
var timePatterns = map[string]pattern{
	// Coffee shops run quiet early, busy mid-morning.
	"coffee": {
		quiet:    []int{6, 7, 14, 15, 16},
		moderate: []int{8, 9, 13, 17},
		busy:     []int{10, 11, 12},
	},
	"cafes": {
		quiet:    []int{6, 7, 14, 15, 16},
		moderate: []int{8, 9, 13, 17},
		busy:     []int{10, 11, 12},
	},

	// Restaurants run quiet early/late, busy at meal times.
	"restaurants": {
		quiet:    []int{11, 14, 15, 16, 21, 22},
		moderate: []int{12, 13, 17, 20},
		busy:     []int{18, 19},
	},
	"italian": {
		quiet:    []int{11, 14, 15, 16, 21, 22},
		moderate: []int{12, 13, 17, 20},
		busy:     []int{18, 19},
	},
	"japanese": {
		quiet:    []int{11, 14, 15, 16, 21, 22},
		moderate: []int{12, 13, 17, 20},
		busy:     []int{18, 19},
	},
	"sushi": {
		quiet:    []int{11, 14, 15, 16, 21, 22},
		moderate: []int{12, 13, 17, 20},
		busy:     []int{18, 19},
	},

	// Brunch spots run quiet on weekday mornings, busy on weekends.
	"breakfast_brunch": {
		quiet:    []int{7, 8, 14, 15},
		moderate: []int{9, 13},
		busy:     []int{10, 11, 12},
	},

	// Bars run quiet in early evening, busy late.
	"bars": {
		quiet:    []int{16, 17},
		moderate: []int{18, 19},
		busy:     []int{20, 21, 22, 23},
	},
	"pubs": {
		quiet:    []int{15, 16, 17},
		moderate: []int{18, 19},
		busy:     []int{20, 21, 22},
	},

	// Tea rooms are generally quiet.
	"tea": {
		quiet:    []int{10, 11, 13, 14, 15, 16, 17},
		moderate: []int{12},
		busy:     []int{},
	},

	"default": {
		quiet:    []int{14, 15, 16},
		moderate: []int{11, 12, 13, 17},
		busy:     []int{18, 19, 20},
	},
}

// weekendAdjustment shifts or extends a category's busy window on weekends.
type weekendAdjustment struct {
	shiftBusy  int // brunch rush starts later
	extendBusy int // bars and restaurants stay busy longer
}

var weekendAdjustments = map[string]weekendAdjustment{
	"breakfast_brunch": {shiftBusy: 1},
	"bars":             {extendBusy: 2},
	"restaurants":      {extendBusy: 1},
}

func (p pattern) isQuiet(hour int) bool { return containsHour(p.quiet, hour) }
func (p pattern) isBusy(hour int) bool  { return containsHour(p.busy, hour) }

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
