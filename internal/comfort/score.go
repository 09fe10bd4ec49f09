package comfort

import (
	"math"
	"strings"

	"github.com/comfrt/comfrt/internal/reviews"
	"github.com/comfrt/comfrt/internal/venue"
)

// Factor records one attribute's contribution to a comfort score. Impact is
// the raw (unweighted) signal delta, for explanation in the detail view.
type Factor struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// Result is the outcome of scoring a single venue.
type Result struct {
	Score   int      `json:"score"`
	Factors []Factor `json:"factors"`
	Label   string   `json:"label"`
}

const (
	// defaultNoiseWeight applies when the user has no stored noise
	// sensitivity.
	defaultNoiseWeight = 0.6

	ambianceWeight = 0.3
	categoryWeight = 0.2

	// reviewImpactCap bounds how far keyword hits can move the score.
	reviewImpactCap = 20
	reviewHitWeight = 3
)

// Calculate scores a venue 0-100 from its sensory attributes and the user's
// preferences. It starts from a neutral 50 and applies weighted deltas for
// noise level, ambiance tags, venue category, review keyword hits, and a few
// flat bonuses. Every input is optional; missing fields simply contribute
// nothing. The result is always clamped to [0,100].
func Calculate(v *venue.Venue, prefs venue.Preferences) Result {
	score := 50.0
	var factors []Factor

	// Noise level is the dominant factor, scaled by the user's sensitivity.
	if v.NoiseLevel != "" {
		noiseScore, ok := NoiseScores[strings.ToLower(v.NoiseLevel)]
		if !ok {
			noiseScore = 50
		}
		weight := defaultNoiseWeight
		if prefs.NoiseSensitivity > 0 {
			weight = float64(prefs.NoiseSensitivity) / 5
		}
		score += float64(noiseScore-50) * weight
		factors = append(factors, Factor{Factor: "noise", Impact: float64(noiseScore - 50)})
	}

	// Ambiance tags average out; unknown tags count as neutral.
	if len(v.Ambiance) > 0 {
		total := 0
		for _, tag := range v.Ambiance {
			s, ok := AmbianceScores[strings.ToLower(tag)]
			if !ok {
				s = 50
			}
			total += s
		}
		avg := float64(total) / float64(len(v.Ambiance))
		score += (avg - 50) * ambianceWeight
		factors = append(factors, Factor{Factor: "ambiance", Impact: avg - 50})
	}

	// Category base score: best match across all aliases.
	if len(v.Categories) > 0 {
		catScore := CategoryScore(v.CategoryAliases())
		score += float64(catScore-50) * categoryWeight
		factors = append(factors, Factor{Factor: "category", Impact: float64(catScore - 50)})
	}

	// Review keyword signal, when raw reviews ride along on the venue.
	if len(v.Reviews) > 0 {
		impact := reviewKeywordImpact(v.Reviews)
		score += clampFloat(impact, -reviewImpactCap, reviewImpactCap)
		factors = append(factors, Factor{Factor: "reviews", Impact: impact})
	}

	// Flat bonuses for escape options and controlled environments.
	if v.OutdoorSeating || truthyAttribute(v.Attributes["outdoor_seating"]) {
		score += 5
		factors = append(factors, Factor{Factor: "outdoor", Impact: 5})
	}
	if v.Reservations || truthyAttribute(v.Attributes["reservations"]) {
		score += 5
		factors = append(factors, Factor{Factor: "reservations", Impact: 5})
	}
	if len(v.Price) >= 3 {
		score += 5
	}

	final := venue.ClampScore(int(math.Round(score)))

	return Result{
		Score:   final,
		Factors: factors,
		Label:   Label(final),
	}
}

// CategoryScore returns the best matching base score across the given
// category aliases, defaulting to the neutral 50 when nothing matches.
func CategoryScore(aliases []string) int {
	best := 50
	for _, alias := range aliases {
		normalized := normalizeAlias(alias)
		for _, cs := range categoryBaseScores {
			if strings.Contains(normalized, cs.key) {
				if cs.score > best {
					best = cs.score
				}
				break
			}
		}
	}
	return best
}

// normalizeAlias lower-cases an alias and strips everything but letters, so
// "Coffee & Tea" and "coffee_tea" both match the same table keys.
func normalizeAlias(alias string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(alias) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// reviewKeywordImpact counts raw comfort keyword occurrences across all
// review text and converts the balance into a score delta.
func reviewKeywordImpact(revs []venue.Review) float64 {
	var sb strings.Builder
	for _, r := range revs {
		sb.WriteString(strings.ToLower(r.Text))
		sb.WriteString(" ")
	}
	text := sb.String()

	var positive, negative int
	for _, keyword := range reviews.PositiveKeywords() {
		positive += strings.Count(text, keyword)
	}
	for _, keyword := range reviews.NegativeKeywords() {
		negative += strings.Count(text, keyword)
	}

	return float64(reviewHitWeight * (positive - negative))
}

// truthyAttribute interprets a raw provider attribute value: true booleans
// and strings other than "no"/"none" count as present.
func truthyAttribute(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != "no" && val != "none"
	default:
		return false
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
