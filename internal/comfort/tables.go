// Package comfort computes the 0-100 comfort score for a venue from its
// sensory attributes and optional review signal, plus the comfort label,
// attribute chips, and recommendation text derived from the same checks.
package comfort

// Noise levels reported (or inferred) for a venue.
const (
	NoiseQuiet    = "quiet"
	NoiseAverage  = "average"
	NoiseLoud     = "loud"
	NoiseVeryLoud = "very_loud"
)

// NoiseScores maps a venue noise level to its comfort contribution. This is
// the single noise table; the sensory matcher references it too so the two
// components cannot drift apart.
var NoiseScores = map[string]int{
	NoiseQuiet:    95,
	NoiseAverage:  65,
	NoiseLoud:     30,
	NoiseVeryLoud: 10,
}

// AmbianceScores maps ambiance tags to comfort contributions. Shared with
// the sensory matcher for the same reason as NoiseScores.
var AmbianceScores = map[string]int{
	"intimate": 90,
	"romantic": 85,
	"cozy":     80,
	"casual":   70,
	"trendy":   50,
	"classy":   65,
	"hipster":  55,
	"divey":    45,
	"touristy": 40,
	"upscale":  60,
}

// categoryScore pairs a category substring with its base comfort score.
// Order matters: the first entry whose key appears in a normalized category
// alias wins for that alias.
type categoryScore struct {
	key   string
	score int
}

// categoryBaseScores reflects that some venue types are naturally more
// sensory-friendly than others.
var categoryBaseScores = []categoryScore{
	// Higher base scores.
	{"cafes", 75},
	{"coffee", 75},
	{"tea", 80},
	{"bookstores", 85},
	{"libraries", 90},
	{"juice", 70},
	{"vegan", 70},
	{"vegetarian", 70},
	{"bakeries", 70},
	{"desserts", 65},
	{"breakfast", 65},

	// Medium base scores.
	{"italian", 60},
	{"japanese", 65},
	{"sushi", 65},
	{"french", 65},
	{"mediterranean", 60},
	{"thai", 55},
	{"vietnamese", 60},
	{"indian", 55},
	{"chinese", 50},

	// Lower base scores (but can still be comfortable).
	{"bars", 35},
	{"pubs", 40},
	{"sportsbars", 20},
	{"clubs", 15},
	{"nightlife", 20},
	{"breweries", 45},
	{"mexican", 50},
	{"pizza", 45},
	{"burgers", 45},
	{"bbq", 40},
}
