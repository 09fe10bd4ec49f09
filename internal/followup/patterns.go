// Package followup classifies chat messages as refinements of the previous
// result set ("filters") versus entirely new searches, and applies the
// detected attribute filters to the prior venues.
package followup

import (
	"regexp"

	"github.com/comfrt/comfrt/internal/venue"
)

// filterPatterns indicate the user is refining the existing result set:
// attribute mentions, comparative refinements, and references to "these".
var filterPatterns = []*regexp.Regexp{
	// Attribute-based filters.
	regexp.MustCompile(`(?i)\b(with|has|have|got)\s+(outdoor|patio|terrace|rooftop)\s*(seating|area|space)?`),
	regexp.MustCompile(`(?i)\boutdoor\s*(seating|dining|patio|area)?\b`),
	regexp.MustCompile(`(?i)\b(with|has|have|got)\s+(wifi|wi-fi|internet)`),
	regexp.MustCompile(`(?i)\b(with|has|have|got)\s+reservations?\b`),
	regexp.MustCompile(`(?i)\b(takes?|accepts?)\s+reservations?\b`),
	regexp.MustCompile(`(?i)\bopen\s+(now|late|early|24)`),
	regexp.MustCompile(`(?i)\b(cheaper|less expensive|budget|affordable)\b`),
	regexp.MustCompile(`(?i)\b(fancier|nicer|upscale|high-end)\b`),
	regexp.MustCompile(`(?i)\b(closer|nearby|nearer|walking distance)\b`),
	regexp.MustCompile(`(?i)\b(quieter|more quiet|less noisy|calmer)\b`),
	regexp.MustCompile(`(?i)\b(louder|more lively|energetic)\b`),
	regexp.MustCompile(`(?i)\bhigher\s+rated\b`),
	regexp.MustCompile(`(?i)\bbetter\s+reviews?\b`),

	// Question words that reference previous results.
	regexp.MustCompile(`(?i)\b(which|what about|how about)\s+(one|ones|of these|of those|them)\b`),
	regexp.MustCompile(`(?i)\bany\s+(of\s+)?(them|these|those)\s+(with|have|has|got|open|take)`),
	regexp.MustCompile(`(?i)\bdo\s+any\s+(of\s+)?(them|these|those)\b`),
	regexp.MustCompile(`(?i)\bwhat\s+about\s+(the\s+)?(other|rest|remaining)\b`),
	regexp.MustCompile(`(?i)\banything\s+(with|that\s+has|quieter|cheaper|closer|open)`),
	regexp.MustCompile(`(?i)\bany\s+(other\s+)?options?\s+(with|that)`),

	// Comparative/superlative asking about the existing set.
	regexp.MustCompile(`(?i)\bwhich\s+(is|are|one|ones)\s+(the\s+)?(quietest|cheapest|closest|best|highest)`),
	regexp.MustCompile(`(?i)\bthe\s+(quietest|cheapest|closest|best|most)\s+(one|option|place|spot)`),

	// Exclusion filters.
	regexp.MustCompile(`(?i)\b(without|no|not|exclude)\s+(outdoor|patio|music|tv|sports)`),
	regexp.MustCompile(`(?i)\bnot\s+too\s+(loud|noisy|crowded|busy|expensive)`),
}

// newSearchPatterns indicate an entirely different query.
var newSearchPatterns = []*regexp.Regexp{
	// Different cuisine/type.
	regexp.MustCompile(`(?i)\b(find|show|search|look for|get|recommend)\s+(me\s+)?(a|an|some)\b`),
	regexp.MustCompile(`(?i)\bhow about\s+(a|an|some)\s+(different|other|new)\b`),
	regexp.MustCompile(`(?i)\bwhat about\s+(mexican|italian|chinese|japanese|thai|indian|french|korean|vietnamese)`),
	regexp.MustCompile(`(?i)\bswitch to\b`),
	regexp.MustCompile(`(?i)\binstead\s+(of|,)\s*(find|show|search|get)`),

	// Explicitly new search.
	regexp.MustCompile(`(?i)\b(new|different|another)\s+(search|type|cuisine|kind|category)`),
	regexp.MustCompile(`(?i)\bstart\s+(over|fresh|again)\b`),
	regexp.MustCompile(`(?i)\bforget\s+(that|those|them)\b`),

	// Location change.
	regexp.MustCompile(`(?i)\bin\s+(a\s+)?different\s+(area|neighborhood|location|city)`),
	regexp.MustCompile(`(?i)\bsomewhere\s+else\b`),
}

// attributeFilter describes one named filter: the message patterns that
// trigger it and how it resolves against a venue. Resolution order is
// venueField path, then fallbackField, then comfort-attribute chips, then
// (when searchReviews is set) full review text. A scoreFilter bypasses
// field lookup entirely.
type attributeFilter struct {
	patterns      []*regexp.Regexp
	venueField    string
	fallbackField string
	searchReviews bool
	scoreFilter   func(*venue.Venue) bool
	label         string
}

// filterOrder fixes the detection and application order of named filters.
var filterOrder = []string{
	"outdoor_seating", "reservations", "wifi", "quiet",
	"price_low", "price_high", "open_now", "higher_rated",
}

var attributeFilters = map[string]attributeFilter{
	"outdoor_seating": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)outdoor`),
			regexp.MustCompile(`(?i)patio`),
			regexp.MustCompile(`(?i)terrace`),
			regexp.MustCompile(`(?i)rooftop`),
			regexp.MustCompile(`(?i)outside`),
			regexp.MustCompile(`(?i)al\s*fresco`),
		},
		venueField:    "attributes.outdoor_seating",
		fallbackField: "outdoor_seating",
		// Providers often bury seating info in review text rather than
		// structured attributes.
		searchReviews: true,
		label:         "outdoor seating",
	},
	"reservations": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)reservations?`),
			regexp.MustCompile(`(?i)book(ing)?`),
		},
		venueField:    "attributes.restaurants_reservations",
		fallbackField: "reservations",
		label:         "reservations",
	},
	"wifi": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)wifi`),
			regexp.MustCompile(`(?i)wi-fi`),
			regexp.MustCompile(`(?i)internet`),
		},
		venueField:    "attributes.wifi",
		fallbackField: "wifi",
		label:         "WiFi",
	},
	"quiet": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)quiet`),
			regexp.MustCompile(`(?i)calm`),
			regexp.MustCompile(`(?i)peaceful`),
			regexp.MustCompile(`(?i)less\s+noisy`),
			regexp.MustCompile(`(?i)not\s+(too\s+)?loud`),
		},
		scoreFilter: func(v *venue.Venue) bool {
			return v.ComfortScore >= 60 || v.NoiseLevel == "quiet"
		},
		label: "quieter atmosphere",
	},
	"price_low": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)cheap`),
			regexp.MustCompile(`(?i)budget`),
			regexp.MustCompile(`(?i)affordable`),
			regexp.MustCompile(`(?i)inexpensive`),
			regexp.MustCompile(`(?i)less\s+expensive`),
		},
		scoreFilter: func(v *venue.Venue) bool {
			return v.Price == "$" || v.Price == "$$"
		},
		label: "budget-friendly prices",
	},
	"price_high": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)fancy`),
			regexp.MustCompile(`(?i)upscale`),
			regexp.MustCompile(`(?i)high-end`),
			regexp.MustCompile(`(?i)nice`),
			regexp.MustCompile(`(?i)splurge`),
		},
		scoreFilter: func(v *venue.Venue) bool {
			return v.Price == "$$$" || v.Price == "$$$$"
		},
		label: "upscale dining",
	},
	"open_now": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)open\s+now`),
			regexp.MustCompile(`(?i)currently\s+open`),
			regexp.MustCompile(`(?i)still\s+open`),
		},
		venueField:    "hours[0].is_open_now",
		fallbackField: "is_open_now",
		label:         "currently open",
	},
	"higher_rated": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)higher\s+rated`),
			regexp.MustCompile(`(?i)better\s+review`),
			regexp.MustCompile(`(?i)top\s+rated`),
			regexp.MustCompile(`(?i)best\s+rated`),
		},
		scoreFilter: func(v *venue.Venue) bool {
			return v.Rating >= 4.5
		},
		label: "higher ratings",
	},
}
