package reviews

import (
	"strings"
	"testing"

	"github.com/comfrt/comfrt/internal/venue"
)

func TestAnalyze_EmptyReviews(t *testing.T) {
	analysis := Analyze(nil)
	if analysis.Confidence != 0 {
		t.Errorf("expected confidence 0 for no reviews, got %d", analysis.Confidence)
	}
	if analysis.SentimentScore != 50 {
		t.Errorf("expected neutral sentiment 50, got %d", analysis.SentimentScore)
	}
	for _, cat := range Categories {
		if got := analysis.Breakdown[cat].Score; got != 50 {
			t.Errorf("category %s: expected score 50, got %d", cat, got)
		}
	}
}

func TestAnalyze_PositiveReviews(t *testing.T) {
	revs := []venue.Review{
		{Text: "Such a quiet and peaceful place, very relaxing."},
		{Text: "The lighting is dim and the seating is spacious."},
	}
	analysis := Analyze(revs)

	if analysis.SentimentScore <= 50 {
		t.Errorf("expected positive sentiment above 50, got %d", analysis.SentimentScore)
	}
	if analysis.Confidence == 0 {
		t.Error("expected nonzero confidence with keyword mentions")
	}
	if noise := analysis.Breakdown[CategoryNoise]; noise.Positive == 0 {
		t.Errorf("expected positive noise mentions, got %+v", noise)
	}
	if len(analysis.Highlights) == 0 {
		t.Error("expected highlights for positive keywords")
	}
}

func TestAnalyze_NegativeReviews(t *testing.T) {
	revs := []venue.Review{
		{Text: "So loud and crowded, the whole room felt chaotic."},
		{Text: "Packed and noisy with harsh fluorescent lights."},
	}
	analysis := Analyze(revs)

	if analysis.SentimentScore >= 50 {
		t.Errorf("expected negative sentiment below 50, got %d", analysis.SentimentScore)
	}
	if len(analysis.Concerns) == 0 {
		t.Error("expected concerns for negative keywords")
	}
	if len(analysis.Concerns) > 3 {
		t.Errorf("expected at most 3 concerns, got %d", len(analysis.Concerns))
	}
}

func TestAnalyze_ConfidenceFormula(t *testing.T) {
	// Four mentions across two reviews: 4/2*25 = 50.
	revs := []venue.Review{
		{Text: "quiet and peaceful"},
		{Text: "dim and spacious"},
	}
	analysis := Analyze(revs)
	if analysis.TotalMentions != 4 {
		t.Fatalf("expected 4 mentions, got %d", analysis.TotalMentions)
	}
	if analysis.Confidence != 50 {
		t.Errorf("expected confidence 50, got %d", analysis.Confidence)
	}
}

func TestAnalyze_ConfidenceCapped(t *testing.T) {
	revs := []venue.Review{
		{Text: strings.Repeat("quiet peaceful calm loud noisy crowded ", 10)},
	}
	analysis := Analyze(revs)
	if analysis.Confidence != 100 {
		t.Errorf("expected confidence capped at 100, got %d", analysis.Confidence)
	}
}

func TestAnalyze_CategoryScoreRatio(t *testing.T) {
	// Three positive noise mentions, one negative: 3/4 = 75.
	revs := []venue.Review{
		{Text: "quiet, peaceful, and serene, though loud on weekends"},
	}
	analysis := Analyze(revs)
	if got := analysis.Breakdown[CategoryNoise].Score; got != 75 {
		t.Errorf("expected noise score 75, got %d", got)
	}
}

func TestExtractQuotes(t *testing.T) {
	revs := []venue.Review{
		{
			Text: "The atmosphere here is quiet and peaceful all day. Bad coffee though. " +
				"We loved the cozy corner table by the window seat.",
			User: venue.ReviewUser{Name: "Sam R."},
		},
	}
	quotes := ExtractQuotes(revs)
	if len(quotes) == 0 {
		t.Fatal("expected at least one quote")
	}
	for _, q := range quotes {
		if len(q.Text) <= 20 || len(q.Text) >= 150 {
			t.Errorf("quote length out of bounds: %q", q.Text)
		}
		if q.User != "Sam R." {
			t.Errorf("expected author Sam R., got %q", q.User)
		}
	}
	if quotes[0].Sentiment != "positive" {
		t.Errorf("expected positive sentiment, got %q", quotes[0].Sentiment)
	}
}

func TestExtractQuotes_Empty(t *testing.T) {
	if quotes := ExtractQuotes(nil); quotes != nil {
		t.Errorf("expected nil for no reviews, got %v", quotes)
	}
}

func TestSummary_LowData(t *testing.T) {
	analysis := Analyze(nil)
	got := Summary(&analysis)
	if !strings.Contains(got, "don't have enough review data") {
		t.Errorf("expected low-data summary, got %q", got)
	}
}

func TestSummary_Positive(t *testing.T) {
	revs := []venue.Review{
		{Text: "quiet and peaceful, never crowded"},
		{Text: "so quiet and relaxing, uncrowded in the mornings"},
	}
	analysis := Analyze(revs)
	got := Summary(&analysis)
	if !strings.Contains(got, "comfortable, calm spot") {
		t.Errorf("expected a calm-spot summary, got %q", got)
	}
}
