// Package sensory computes the per-category compatibility between a venue's
// inferred sensory profile and a user's stated sensitivities.
package sensory

import (
	"math"

	"github.com/comfrt/comfrt/internal/comfort"
	"github.com/comfrt/comfrt/internal/reviews"
	"github.com/comfrt/comfrt/internal/venue"
)

// Match levels per category.
const (
	MatchExcellent = "excellent"
	MatchGood      = "good"
	MatchModerate  = "moderate"
	MatchPoor      = "poor"
)

// CategoryMatch is the per-category result of a sensory match.
type CategoryMatch struct {
	Score          int    `json:"score"`
	UserPreference int    `json:"userPreference"`
	VenueLevel     string `json:"venueLevel"`
	Match          string `json:"match"`
	Description    string `json:"description"`
}

// Result holds the overall match score and its per-category breakdown.
type Result struct {
	Overall   int                      `json:"overall"`
	Breakdown map[string]CategoryMatch `json:"breakdown"`
}

// Calculate scores how well a venue suits the user's sensory preferences.
// Each category is scored independently; the overall score is the weighted
// sum using the same per-category weights as the review analyzer.
func Calculate(v *venue.Venue, prefs venue.Preferences) Result {
	prefs = prefs.Clamp()

	breakdown := map[string]CategoryMatch{
		reviews.CategoryNoise: {
			Score:          noiseMatch(v, prefs),
			UserPreference: prefs.NoiseSensitivity,
			VenueLevel:     noiseLevel(v),
			Description:    noiseDescription(v),
		},
		reviews.CategoryLighting: {
			Score:          lightingMatch(v, prefs),
			UserPreference: prefs.LightSensitivity,
			VenueLevel:     inferLightingLevel(v),
			Description:    lightingDescription(v),
		},
		reviews.CategorySpace: {
			Score:          spaceMatch(v, prefs),
			UserPreference: prefs.SpaciousnessPreference,
			VenueLevel:     inferSpaceLevel(v),
			Description:    spaceDescription(v),
		},
		reviews.CategoryAmbiance: {
			Score:          ambianceMatch(v),
			UserPreference: 3,
			VenueLevel:     ambianceLevel(v),
			Description:    ambianceDescription(v),
		},
		reviews.CategorySensory: sensoryCategory(v),
	}

	var overall float64
	for category, weight := range reviews.CategoryWeights {
		score := 50
		if cm, ok := breakdown[category]; ok {
			score = cm.Score
		}
		overall += float64(score) * weight
	}

	for category, cm := range breakdown {
		cm.Match = matchLevel(cm.Score)
		breakdown[category] = cm
	}

	return Result{
		Overall:   int(math.Round(overall)),
		Breakdown: breakdown,
	}
}

func matchLevel(score int) string {
	switch {
	case score >= 80:
		return MatchExcellent
	case score >= 65:
		return MatchGood
	case score >= 50:
		return MatchModerate
	default:
		return MatchPoor
	}
}

func noiseLevel(v *venue.Venue) string {
	if v.NoiseLevel != "" {
		return v.NoiseLevel
	}
	return comfort.NoiseAverage
}

// noiseMatch scores against the shared noise table, pushed to the extremes
// for highly sensitive users.
func noiseMatch(v *venue.Venue, prefs venue.Preferences) int {
	level := noiseLevel(v)
	base, ok := comfort.NoiseScores[level]
	if !ok {
		base = comfort.NoiseScores[comfort.NoiseAverage]
	}

	sensitivity := prefs.NoiseSensitivity
	switch {
	case sensitivity >= 4 && level == comfort.NoiseQuiet:
		return 100
	case sensitivity >= 4 && level == comfort.NoiseLoud:
		return 20
	case sensitivity <= 2 && level != comfort.NoiseQuiet:
		return base + 10
	}
	return base
}

// lightingMatch infers lighting quality from ambiance tags and price tier.
func lightingMatch(v *venue.Venue, prefs venue.Preferences) int {
	base := 60
	if v.HasAmbiance("intimate") || v.HasAmbiance("romantic") {
		base = 90
	}
	if v.HasAmbiance("cozy") {
		base = 80
	}
	if len(v.Price) >= 3 && base < 75 {
		base = 75
	}

	if prefs.LightSensitivity >= 4 {
		if base >= 80 {
			return 95
		}
		if base < 60 {
			return 40
		}
	}
	return base
}

func spaceMatch(v *venue.Venue, prefs venue.Preferences) int {
	base := 60
	if len(v.Price) >= 3 {
		base = 80
	}
	if v.Reservations {
		base += 10
	}

	if prefs.SpaciousnessPreference >= 4 && base >= 75 {
		return 90
	}
	if prefs.SpaciousnessPreference <= 2 {
		// Cozy is fine for users who prefer intimate spaces.
		return base + 10
	}
	if base > 100 {
		base = 100
	}
	return base
}

// ambianceMatch takes the best score across the venue's ambiance tags.
func ambianceMatch(v *venue.Venue) int {
	score := 65
	for _, tag := range v.Ambiance {
		if s, ok := comfort.AmbianceScores[tag]; ok && s > score {
			score = s
		}
	}
	return score
}

// sensoryCategory defaults to the review analyzer's sensory sub-score when
// an analysis rides along on the venue, else the neutral 50.
func sensoryCategory(v *venue.Venue) CategoryMatch {
	score := 50
	if v.ReviewAnalysis != nil {
		if cs, ok := v.ReviewAnalysis.Breakdown[reviews.CategorySensory]; ok {
			score = cs.Score
		}
	}

	level := "standard"
	if score >= 70 {
		level = "comfortable"
	}

	return CategoryMatch{
		Score:          score,
		UserPreference: 3,
		VenueLevel:     level,
		Description:    sensoryDescription(score),
	}
}

func inferLightingLevel(v *venue.Venue) string {
	switch {
	case v.HasAmbiance("intimate") || v.HasAmbiance("romantic"):
		return "dim"
	case v.HasAmbiance("cozy"):
		return "soft"
	case len(v.Price) >= 3:
		return "ambient"
	default:
		return "standard"
	}
}

func inferSpaceLevel(v *venue.Venue) string {
	switch {
	case len(v.Price) >= 3:
		return "spacious"
	case v.Reservations:
		return "comfortable"
	default:
		return "standard"
	}
}

func ambianceLevel(v *venue.Venue) string {
	if len(v.Ambiance) > 0 {
		return v.Ambiance[0]
	}
	return "casual"
}

func noiseDescription(v *venue.Venue) string {
	switch v.NoiseLevel {
	case comfort.NoiseQuiet:
		return "Known for a peaceful, quiet atmosphere"
	case comfort.NoiseAverage:
		return "Moderate noise levels typical for this type of venue"
	case comfort.NoiseLoud:
		return "Can get noisy, especially during peak hours"
	default:
		return "Noise levels vary"
	}
}

func lightingDescription(v *venue.Venue) string {
	switch {
	case v.HasAmbiance("intimate"):
		return "Soft, intimate lighting creates a relaxed mood"
	case v.HasAmbiance("romantic"):
		return "Romantic dim lighting, easy on the eyes"
	case len(v.Price) >= 3:
		return "Well-designed ambient lighting"
	default:
		return "Standard lighting typical for this venue type"
	}
}

func spaceDescription(v *venue.Venue) string {
	switch {
	case len(v.Price) >= 3:
		return "More spacious layout with room to breathe"
	case v.Reservations:
		return "Takes reservations, reducing crowding"
	default:
		return "Standard seating arrangement"
	}
}

func ambianceDescription(v *venue.Venue) string {
	switch {
	case v.HasAmbiance("intimate"):
		return "Intimate, quiet atmosphere"
	case v.HasAmbiance("cozy"):
		return "Cozy, comfortable environment"
	case v.HasAmbiance("casual"):
		return "Relaxed, casual vibe"
	default:
		return "Pleasant atmosphere"
	}
}

func sensoryDescription(score int) string {
	switch {
	case score >= 70:
		return "Reviews mention comfortable sensory environment"
	case score >= 50:
		return "Standard sensory experience"
	default:
		return "Some sensory concerns noted in reviews"
	}
}
