package comfort

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/comfrt/comfrt/internal/venue"
)

func quietCafe() *venue.Venue {
	return &venue.Venue{
		Name: "The Quiet Cup",
		Categories: []venue.Category{
			{Title: "Coffee & Tea"}, {Title: "Cafe"},
		},
		Rating:         4.7,
		Price:          "$$",
		NoiseLevel:     "quiet",
		Ambiance:       []string{"cozy", "intimate"},
		OutdoorSeating: true,
		Wifi:           "free",
	}
}

func TestCalculate_QuietCafeScoresHigh(t *testing.T) {
	result := Calculate(quietCafe(), venue.DefaultPreferences())
	if result.Score < 75 {
		t.Errorf("expected quiet cozy cafe to score >= 75, got %d", result.Score)
	}
	if result.Label != "Very Calm" && result.Label != "Calm" {
		t.Errorf("unexpected label %q for score %d", result.Label, result.Score)
	}
}

func TestCalculate_ClampsToRange(t *testing.T) {
	negative := &venue.Venue{
		Categories: []venue.Category{{Alias: "clubs"}},
		NoiseLevel: "very_loud",
		Ambiance:   []string{"touristy"},
		Reviews: []venue.Review{
			{Text: strings.Repeat("deafening loud noisy chaotic overwhelming crowded packed cramped ", 5)},
		},
	}
	prefs := venue.Preferences{NoiseSensitivity: 5, LightSensitivity: 5, SpaciousnessPreference: 5}
	result := Calculate(negative, prefs)
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score out of range: %d", result.Score)
	}

	positive := quietCafe()
	positive.Reservations = true
	positive.Price = "$$$$"
	positive.Reviews = []venue.Review{
		{Text: strings.Repeat("quiet peaceful calm serene cozy relaxing ", 10)},
	}
	result = Calculate(positive, prefs)
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score out of range: %d", result.Score)
	}
}

func TestCalculate_NoiseMonotonicity(t *testing.T) {
	prefs := venue.DefaultPreferences()
	quiet := &venue.Venue{NoiseLevel: "quiet"}
	loud := &venue.Venue{NoiseLevel: "loud"}
	if q, l := Calculate(quiet, prefs).Score, Calculate(loud, prefs).Score; q <= l {
		t.Errorf("quiet venue (%d) should outscore loud venue (%d)", q, l)
	}
}

func TestCalculate_SensitivityWeighting(t *testing.T) {
	v := &venue.Venue{NoiseLevel: "quiet"}
	prev := -1
	for s := 1; s <= 5; s++ {
		prefs := venue.Preferences{NoiseSensitivity: s, LightSensitivity: 3, SpaciousnessPreference: 3}
		score := Calculate(v, prefs).Score
		if score < prev {
			t.Errorf("score dropped from %d to %d at sensitivity %d", prev, score, s)
		}
		prev = score
	}
}

func TestCalculate_MissingFieldsNeutral(t *testing.T) {
	result := Calculate(&venue.Venue{}, venue.Preferences{})
	if result.Score != 50 {
		t.Errorf("expected neutral 50 for empty venue, got %d", result.Score)
	}
	if len(result.Factors) != 0 {
		t.Errorf("expected no factors for empty venue, got %d", len(result.Factors))
	}
}

func TestCalculate_ReviewImpactCapped(t *testing.T) {
	base := &venue.Venue{NoiseLevel: "average"}
	loaded := &venue.Venue{
		NoiseLevel: "average",
		Reviews: []venue.Review{
			{Text: strings.Repeat("quiet peaceful calm tranquil serene ", 50)},
		},
	}
	prefs := venue.DefaultPreferences()
	delta := Calculate(loaded, prefs).Score - Calculate(base, prefs).Score
	if delta > 20 {
		t.Errorf("review impact should cap at 20, got delta %d", delta)
	}
}

func TestCategoryScore(t *testing.T) {
	tests := []struct {
		aliases []string
		want    int
	}{
		{[]string{"coffee"}, 75},
		{[]string{"Coffee & Tea"}, 75},
		{[]string{"libraries"}, 90},
		{[]string{"sportsbars"}, 50}, // below neutral, best stays 50
		{[]string{"unknowncategory"}, 50},
		{[]string{"mexican", "tea"}, 80},
		{nil, 50},
	}
	for _, tt := range tests {
		if got := CategoryScore(tt.aliases); got != tt.want {
			t.Errorf("CategoryScore(%v) = %d, want %d", tt.aliases, got, tt.want)
		}
	}
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Very Calm"},
		{80, "Very Calm"},
		{79, "Calm"},
		{65, "Calm"},
		{64, "Moderate"},
		{50, "Moderate"},
		{49, "Lively"},
		{35, "Lively"},
		{34, "Very Lively"},
		{0, "Very Lively"},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAttributes_QuietCafeChips(t *testing.T) {
	attrs := Attributes(quietCafe())
	if len(attrs) > 4 {
		t.Fatalf("expected at most 4 chips, got %d", len(attrs))
	}
	labels := make(map[string]bool)
	for _, a := range attrs {
		labels[a.Label] = true
	}
	if !labels["Quiet"] {
		t.Errorf("expected a Quiet chip, got %v", attrs)
	}
	if !labels["Cozy"] {
		t.Errorf("expected a Cozy chip, got %v", attrs)
	}
}

func TestAttributes_WifiLikelyForCafes(t *testing.T) {
	v := &venue.Venue{
		Categories: []venue.Category{{Alias: "coffee"}},
	}
	attrs := Attributes(v)
	found := false
	for _, a := range attrs {
		if a.Label == "WiFi Likely" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected WiFi Likely chip for a cafe without wifi data, got %v", attrs)
	}
}

func TestReason_Deterministic(t *testing.T) {
	v := quietCafe()
	prefs := venue.DefaultPreferences()

	first := Reason(v, prefs, rand.New(rand.NewPCG(42, 0)))
	second := Reason(v, prefs, rand.New(rand.NewPCG(42, 0)))
	if first != second {
		t.Errorf("same seed gave different reasons: %q vs %q", first, second)
	}

	candidates := ReasonCandidates(v, prefs)
	found := false
	for _, c := range candidates {
		if c == first {
			found = true
		}
	}
	if !found {
		t.Errorf("reason %q not among candidates %v", first, candidates)
	}
}

func TestReason_FallbackWhenNothingApplies(t *testing.T) {
	got := Reason(&venue.Venue{}, venue.Preferences{}, nil)
	if got != fallbackReason {
		t.Errorf("expected fallback reason, got %q", got)
	}
}
