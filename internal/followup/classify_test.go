package followup

import "testing"

func TestClassify_NoPriorResults(t *testing.T) {
	got := Classify("which ones have outdoor seating?", false)
	if !got.IsNewSearch {
		t.Error("expected new search when there is nothing to filter")
	}
	if got.IsFilter {
		t.Error("IsFilter should be false without prior results")
	}
	if got.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", got.Confidence)
	}
}

func TestClassify_OutdoorSeatingQuestion(t *testing.T) {
	got := Classify("Does it have outdoor seating?", true)
	if !got.IsFilter {
		t.Fatalf("expected filter classification, got %+v", got)
	}
	if len(got.DetectedFilters) == 0 || got.DetectedFilters[0] != "outdoor_seating" {
		t.Errorf("expected outdoor_seating filter, got %v", got.DetectedFilters)
	}
	if got.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", got.Confidence)
	}
}

func TestClassify_DifferentCuisineIsNewSearch(t *testing.T) {
	got := Classify("Find me a different Italian place", true)
	if !got.IsNewSearch {
		t.Fatalf("expected new search, got %+v", got)
	}
	if got.IsFilter {
		t.Error("new search must not also be a filter")
	}
}

func TestClassify_MutuallyExclusive(t *testing.T) {
	messages := []string{
		"which ones have wifi?",
		"anything quieter?",
		"find me a sushi place",
		"start over",
		"somewhere else please",
		"how was your day",
	}
	for _, msg := range messages {
		got := Classify(msg, true)
		if got.IsFilter == got.IsNewSearch {
			t.Errorf("%q: IsFilter (%v) and IsNewSearch (%v) must disagree", msg, got.IsFilter, got.IsNewSearch)
		}
	}
}

func TestClassify_ShortMessageHighConfidence(t *testing.T) {
	got := Classify("any with wifi?", true)
	if !got.IsFilter {
		t.Fatalf("expected filter, got %+v", got)
	}
	if got.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence for a short filter message, got %q", got.Confidence)
	}
}

func TestClassify_ComparativeRefinements(t *testing.T) {
	tests := []struct {
		message string
		filter  string
	}{
		{"anything quieter?", "quiet"},
		{"something cheaper would be nice", "price_low"},
		{"do any of them take reservations?", "reservations"},
		{"which ones are open now?", "open_now"},
		{"only the higher rated ones", "higher_rated"},
		{"somewhere more upscale", "price_high"},
	}
	for _, tt := range tests {
		got := Classify(tt.message, true)
		if !got.IsFilter {
			t.Errorf("%q: expected filter, got %+v", tt.message, got)
			continue
		}
		found := false
		for _, f := range got.DetectedFilters {
			if f == tt.filter {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected filter %q, got %v", tt.message, tt.filter, got.DetectedFilters)
		}
	}
}

func TestClassify_EmptyMessage(t *testing.T) {
	got := Classify("   ", true)
	if !got.IsNewSearch {
		t.Errorf("expected blank message to classify as new search, got %+v", got)
	}
}

func TestDetectFilters_Order(t *testing.T) {
	got := DetectFilters("quiet spots with wifi and outdoor seating")
	want := []string{"outdoor_seating", "wifi", "quiet"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
