package outing

import (
	"testing"

	"github.com/comfrt/comfrt/internal/venue"
)

func TestTotalComfort_MeanOfScoredStops(t *testing.T) {
	stops := []Stop{
		{Type: "coffee", ComfortScore: 80},
		{Type: "lunch", ComfortScore: 60},
	}
	if got := TotalComfort(stops); got != 70 {
		t.Errorf("expected 70, got %d", got)
	}
}

func TestTotalComfort_RoundsHalfUp(t *testing.T) {
	stops := []Stop{
		{Type: "coffee", ComfortScore: 80},
		{Type: "lunch", ComfortScore: 75},
	}
	if got := TotalComfort(stops); got != 78 {
		t.Errorf("expected 78, got %d", got)
	}
}

func TestTotalComfort_ExcludesUnscoredStops(t *testing.T) {
	stops := []Stop{
		{Type: "coffee", ComfortScore: 90},
		{Type: "activity"},
		{Type: "dinner", ComfortScore: 70},
	}
	if got := TotalComfort(stops); got != 80 {
		t.Errorf("unscored stop should not drag the mean down, got %d", got)
	}
}

func TestTotalComfort_EmptyAndAllUnscored(t *testing.T) {
	if got := TotalComfort(nil); got != 0 {
		t.Errorf("expected 0 for no stops, got %d", got)
	}
	if got := TotalComfort([]Stop{{Type: "walk"}, {Type: "coffee"}}); got != 0 {
		t.Errorf("expected 0 when nothing is scored, got %d", got)
	}
}

func TestTotalComfort_PrefersAttachedVenueScore(t *testing.T) {
	stops := []Stop{
		{
			Type:         "coffee",
			ComfortScore: 40,
			Venue:        &venue.Venue{Name: "The Quiet Cup", ComfortScore: 90},
		},
	}
	if got := TotalComfort(stops); got != 90 {
		t.Errorf("expected the venue score to win, got %d", got)
	}
}

func TestSuggestedStopTypes_SkipsUsedTypes(t *testing.T) {
	stops := []Stop{{Type: "coffee"}, {Type: "Lunch"}}
	got := SuggestedStopTypes(stops)
	want := []string{"dinner", "drinks", "activity"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSuggestedStopTypes_FallbackWhenAllUsed(t *testing.T) {
	stops := make([]Stop, len(stopTypes))
	for i, typ := range stopTypes {
		stops[i] = Stop{Type: typ}
	}
	got := SuggestedStopTypes(stops)
	want := []string{"dessert", "walk", "second coffee"}
	if len(got) != len(want) {
		t.Fatalf("expected fallback %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTotalDuration_DefaultsMissingToAnHour(t *testing.T) {
	stops := []Stop{
		{Type: "coffee", Duration: 45},
		{Type: "lunch"},
		{Type: "dinner", Duration: 90},
	}
	if got := TotalDuration(stops); got != 195 {
		t.Errorf("expected 195 minutes, got %d", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45min"},
		{60, "1h"},
		{90, "1h 30min"},
		{120, "2h"},
		{195, "3h 15min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
