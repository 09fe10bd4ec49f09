package app

import (
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// detectVenueType guesses the venue type a search message is asking for.
func detectVenueType(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "coffee") || strings.Contains(lower, "cafe"):
		return "coffee"
	case strings.Contains(lower, "italian"):
		return "italian"
	case strings.Contains(lower, "japanese") || strings.Contains(lower, "sushi"):
		return "japanese"
	case strings.Contains(lower, "lunch") || strings.Contains(lower, "casual"):
		return "casual"
	}
	return "restaurant"
}

// demoVenues returns the built-in venue catalog for a type. The catalog
// stands in for the external search provider so every command works
// offline.
func demoVenues(venueType string) []venue.Venue {
	venues, ok := demoCatalog[venueType]
	if !ok {
		venues = demoCatalog["restaurant"]
	}
	// Copy so enrichment never mutates the catalog.
	out := make([]venue.Venue, len(venues))
	copy(out, venues)
	return out
}

var demoCatalog = map[string][]venue.Venue{
	"coffee": {
		{
			ID:   "demo-1",
			Name: "The Quiet Cup",
			Categories: []venue.Category{
				{Title: "Coffee & Tea"}, {Title: "Cafe"},
			},
			Location:       venue.Location{Address1: "123 Peaceful Lane"},
			Rating:         4.7,
			Price:          "$$",
			NoiseLevel:     "quiet",
			Ambiance:       []string{"cozy", "intimate"},
			OutdoorSeating: true,
			Wifi:           "free",
		},
		{
			ID:   "demo-2",
			Name: "Serenity Brews",
			Categories: []venue.Category{
				{Title: "Coffee Shop"},
			},
			Location:   venue.Location{Address1: "456 Calm Street"},
			Rating:     4.5,
			Price:      "$",
			NoiseLevel: "quiet",
			Ambiance:   []string{"casual"},
			Wifi:       "free",
		},
	},
	"italian": {
		{
			ID:   "demo-3",
			Name: "Tranquillo Ristorante",
			Categories: []venue.Category{
				{Title: "Italian"}, {Title: "Fine Dining"},
			},
			Location:       venue.Location{Address1: "789 Roma Avenue"},
			Rating:         4.8,
			Price:          "$$$",
			NoiseLevel:     "quiet",
			Ambiance:       []string{"romantic", "intimate"},
			OutdoorSeating: true,
			Reservations:   true,
		},
		{
			ID:   "demo-4",
			Name: "Piccola Pace",
			Categories: []venue.Category{
				{Title: "Italian"}, {Title: "Wine Bar"},
			},
			Location:     venue.Location{Address1: "321 Serene Boulevard"},
			Rating:       4.6,
			Price:        "$$",
			NoiseLevel:   "average",
			Ambiance:     []string{"cozy"},
			Reservations: true,
		},
	},
	"japanese": {
		{
			ID:   "demo-5",
			Name: "Zen Garden Sushi",
			Categories: []venue.Category{
				{Title: "Japanese"}, {Title: "Sushi"},
			},
			Location:     venue.Location{Address1: "555 Harmony Way"},
			Rating:       4.9,
			Price:        "$$$",
			NoiseLevel:   "quiet",
			Ambiance:     []string{"intimate"},
			Reservations: true,
		},
	},
	"casual": {
		{
			ID:   "demo-6",
			Name: "Gentle Greens",
			Categories: []venue.Category{
				{Title: "Salads"}, {Title: "Healthy"},
			},
			Location:       venue.Location{Address1: "888 Wellness Drive"},
			Rating:         4.4,
			Price:          "$$",
			NoiseLevel:     "average",
			Ambiance:       []string{"casual"},
			OutdoorSeating: true,
			Wifi:           "free",
		},
	},
	"restaurant": {
		{
			ID:   "demo-7",
			Name: "The Peaceful Plate",
			Categories: []venue.Category{
				{Title: "American"}, {Title: "New American"},
			},
			Location:       venue.Location{Address1: "999 Quiet Court"},
			Rating:         4.6,
			Price:          "$$",
			NoiseLevel:     "quiet",
			Ambiance:       []string{"casual", "cozy"},
			OutdoorSeating: true,
			Reservations:   true,
		},
		{
			ID:   "demo-8",
			Name: "Calm Kitchen",
			Categories: []venue.Category{
				{Title: "Comfort Food"},
			},
			Location:     venue.Location{Address1: "222 Tranquil Terrace"},
			Rating:       4.5,
			Price:        "$$",
			NoiseLevel:   "quiet",
			Ambiance:     []string{"intimate"},
			Reservations: true,
		},
	},
}
