package app

import "testing"

func TestDetectVenueType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"find me a quiet coffee shop", "coffee"},
		{"any calm cafes nearby?", "coffee"},
		{"italian dinner for two", "italian"},
		{"sushi tonight", "japanese"},
		{"somewhere casual for lunch", "casual"},
		{"a peaceful place to eat", "restaurant"},
	}
	for _, tt := range tests {
		if got := detectVenueType(tt.message); got != tt.want {
			t.Errorf("detectVenueType(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestDemoVenues_UnknownTypeFallsBack(t *testing.T) {
	got := demoVenues("steakhouse")
	if len(got) == 0 {
		t.Fatal("expected the restaurant fallback set")
	}
	if got[0].ID != demoCatalog["restaurant"][0].ID {
		t.Errorf("expected restaurant venues, got %s", got[0].ID)
	}
}

func TestDemoVenues_CopiesCatalog(t *testing.T) {
	got := demoVenues("coffee")
	got[0].ComfortScore = 99

	if demoCatalog["coffee"][0].ComfortScore == 99 {
		t.Error("enrichment output must not mutate the catalog")
	}
}
