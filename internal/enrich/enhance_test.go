package enrich

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/comfrt/comfrt/internal/venue"
)

func neutralPrefs() venue.Preferences {
	return venue.Preferences{NoiseSensitivity: 3, LightSensitivity: 3, SpaciousnessPreference: 3}
}

func coffeeVenue() venue.Venue {
	return venue.Venue{
		ID:   "test-coffee",
		Name: "Corner Roasters",
		Categories: []venue.Category{
			{Alias: "coffee", Title: "Coffee & Tea"},
		},
		Price:  "$",
		Rating: 4.5,
	}
}

func TestEnhance_InfersNoiseFromCategory(t *testing.T) {
	tests := []struct {
		name  string
		v     venue.Venue
		noise string
	}{
		{"coffee shop", coffeeVenue(), "quiet"},
		{"sports bar", venue.Venue{
			Categories: []venue.Category{{Alias: "sportsbars", Title: "Sports Bars"}},
			Price:      "$$",
		}, "loud"},
		{"expensive restaurant", venue.Venue{
			Categories: []venue.Category{{Alias: "french", Title: "French"}},
			Price:      "$$$$",
		}, "quiet"},
		{"no signal", venue.Venue{
			Categories: []venue.Category{{Alias: "mexican", Title: "Mexican"}},
			Price:      "$$",
		}, "average"},
	}

	e := New(neutralPrefs())
	for _, tt := range tests {
		v := tt.v
		e.Enhance(&v)
		if v.NoiseLevel != tt.noise {
			t.Errorf("%s: expected noise %q, got %q", tt.name, tt.noise, v.NoiseLevel)
		}
	}
}

func TestEnhance_KeepsProviderNoiseLevel(t *testing.T) {
	v := coffeeVenue()
	v.NoiseLevel = "loud"

	New(neutralPrefs()).Enhance(&v)
	if v.NoiseLevel != "loud" {
		t.Errorf("provider noise level should survive, got %q", v.NoiseLevel)
	}
}

func TestEnhance_ClaudeNoiseWins(t *testing.T) {
	v := coffeeVenue()
	v.NoiseLevel = "loud"
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{NoiseLevel: "moderate"}

	New(neutralPrefs()).Enhance(&v)
	if v.NoiseLevel != "average" {
		t.Errorf("expected moderate to map to average, got %q", v.NoiseLevel)
	}
}

func TestEnhance_InfersAmbianceFromPrice(t *testing.T) {
	cheap := coffeeVenue()
	New(neutralPrefs()).Enhance(&cheap)
	if len(cheap.Ambiance) != 1 || cheap.Ambiance[0] != "casual" {
		t.Errorf("expected casual ambiance, got %v", cheap.Ambiance)
	}

	pricey := venue.Venue{Price: "$$$$"}
	New(neutralPrefs()).Enhance(&pricey)
	if len(pricey.Ambiance) != 1 || pricey.Ambiance[0] != "intimate" {
		t.Errorf("expected intimate ambiance, got %v", pricey.Ambiance)
	}
}

func TestEnhance_ComputesScoreAndReason(t *testing.T) {
	v := coffeeVenue()
	New(neutralPrefs(), WithRand(rand.New(rand.NewPCG(1, 0)))).Enhance(&v)

	if v.ComfortScore < 0 || v.ComfortScore > 100 {
		t.Errorf("score out of range: %d", v.ComfortScore)
	}
	if v.ComfortScore < 60 {
		t.Errorf("quiet cheap coffee shop should score well, got %d", v.ComfortScore)
	}
	if v.RecommendationReason == "" {
		t.Error("expected a recommendation reason")
	}
	if len(v.ComfortAttributes) == 0 {
		t.Error("expected comfort chips")
	}
	if len(v.ComfortAttributes) > 4 {
		t.Errorf("expected at most 4 chips, got %d", len(v.ComfortAttributes))
	}
}

func TestEnhance_ClaudeScoreOverrides(t *testing.T) {
	score := 97
	v := coffeeVenue()
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{ComfortScore: &score}

	New(neutralPrefs()).Enhance(&v)
	if v.ComfortScore != 97 {
		t.Errorf("expected the analysis score 97, got %d", v.ComfortScore)
	}
}

func TestEnhance_ClaudeScoreClamped(t *testing.T) {
	score := 130
	v := coffeeVenue()
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{ComfortScore: &score}

	New(neutralPrefs()).Enhance(&v)
	if v.ComfortScore != 100 {
		t.Errorf("expected clamp to 100, got %d", v.ComfortScore)
	}
}

func TestEnhance_ClaudeQuoteBecomesReason(t *testing.T) {
	v := coffeeVenue()
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{
		Quote:   "So peaceful in the mornings",
		Summary: "A calm spot.",
	}

	New(neutralPrefs()).Enhance(&v)
	if v.RecommendationReason != `"So peaceful in the mornings"` {
		t.Errorf("expected the quoted review, got %q", v.RecommendationReason)
	}
}

func TestEnhance_ClaudeNullQuoteFallsBackToSummary(t *testing.T) {
	v := coffeeVenue()
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{Quote: "null", Summary: "A calm spot."}

	New(neutralPrefs()).Enhance(&v)
	if v.RecommendationReason != "A calm spot." {
		t.Errorf("expected the summary, got %q", v.RecommendationReason)
	}
}

func TestEnhance_ClaudeChips(t *testing.T) {
	v := coffeeVenue()
	v.ClaudeAnalysis = &venue.ClaudeAnalysis{
		NoiseLevel: "quiet",
		Lighting:   "natural",
		Crowding:   "spacious",
		BestFor:    "working",
	}

	New(neutralPrefs()).Enhance(&v)
	labels := make([]string, len(v.ComfortAttributes))
	for i, a := range v.ComfortAttributes {
		labels[i] = a.Label
	}
	want := []string{"Quiet", "Natural Light", "Spacious", "Good for Work"}
	if len(labels) != len(want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("chip %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

func TestEnhance_ReviewsBlendScore(t *testing.T) {
	base := coffeeVenue()
	New(neutralPrefs()).Enhance(&base)

	reviewed := coffeeVenue()
	reviewed.Reviews = []venue.Review{
		{Text: "So loud and crowded, the noise was unbearable.", Rating: 2},
		{Text: "Way too noisy, deafening music and packed tables.", Rating: 1},
	}
	New(neutralPrefs()).Enhance(&reviewed)

	if reviewed.ReviewAnalysis == nil {
		t.Fatal("expected a review analysis")
	}
	if reviewed.ReviewAnalysis.Confidence == 0 {
		t.Fatal("expected nonzero confidence from keyword mentions")
	}
	if reviewed.ComfortScore >= base.ComfortScore {
		t.Errorf("negative reviews should lower the score: %d vs base %d",
			reviewed.ComfortScore, base.ComfortScore)
	}
	if reviewed.ReviewComfortSummary == "" {
		t.Error("expected a review comfort summary")
	}
}

func TestBlendReviewScore_CapsWeight(t *testing.T) {
	e := New(neutralPrefs())
	analysis := &venue.ReviewAnalysis{SentimentScore: 0, Confidence: 100}

	// Weight caps at 0.5, so 80 blends to 40 and no lower.
	if got := e.blendReviewScore(80, analysis); got != 40 {
		t.Errorf("expected 40, got %d", got)
	}

	// Below the cap the confidence sets the weight directly.
	analysis.Confidence = 25
	if got := e.blendReviewScore(80, analysis); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
}

func TestEnhanceAll_SortsAndLimits(t *testing.T) {
	quiet := coffeeVenue()
	loud := venue.Venue{
		ID:         "test-bar",
		Name:       "Stadium Sports Bar",
		Categories: []venue.Category{{Alias: "sportsbars", Title: "Sports Bars"}},
		Price:      "$$",
		NoiseLevel: "very_loud",
	}
	mid := venue.Venue{
		ID:         "test-mex",
		Name:       "Taqueria",
		Categories: []venue.Category{{Alias: "mexican", Title: "Mexican"}},
		Price:      "$",
	}

	e := New(neutralPrefs())
	got, err := e.EnhanceAll(context.Background(), []venue.Venue{loud, quiet, mid}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(got))
	}
	if got[0].ComfortScore < got[1].ComfortScore {
		t.Errorf("expected descending scores, got %d then %d", got[0].ComfortScore, got[1].ComfortScore)
	}
	if got[0].ID != "test-coffee" {
		t.Errorf("expected the quiet coffee shop first, got %s", got[0].ID)
	}
}

func TestEnhanceAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(neutralPrefs())
	venues := []venue.Venue{coffeeVenue()}
	if _, err := e.EnhanceAll(ctx, venues, 0); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}
