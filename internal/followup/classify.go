package followup

import "strings"

// Confidence levels assigned to a classification.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Classification is the verdict on a chat message: whether it refines the
// previous result set, which named filters it requests, and how sure the
// classifier is. IsFilter and IsNewSearch are mutually exclusive.
type Classification struct {
	IsFilter        bool     `json:"isFilter"`
	IsNewSearch     bool     `json:"isNewSearch"`
	DetectedFilters []string `json:"detectedFilters"`
	MatchedPatterns int      `json:"matchedPatterns"`
	Confidence      string   `json:"confidence"`
}

// Classify decides whether message is a follow-up filter on the previous
// results or a fresh search. Without prior results there is nothing to
// filter, so every message is a new search.
func Classify(message string, hasResults bool) Classification {
	if !hasResults || strings.TrimSpace(message) == "" {
		return Classification{IsNewSearch: true, Confidence: ConfidenceHigh}
	}

	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, p := range newSearchPatterns {
		if p.MatchString(normalized) {
			return Classification{IsNewSearch: true, Confidence: ConfidenceHigh}
		}
	}

	matched := 0
	for _, p := range filterPatterns {
		if p.MatchString(normalized) {
			matched++
		}
	}

	detected := DetectFilters(normalized)

	confidence := ConfidenceLow
	switch {
	case matched >= 2 || len(detected) >= 1:
		confidence = ConfidenceHigh
	case matched == 1:
		confidence = ConfidenceMedium
	}

	// Short messages in the middle of a conversation ("outdoor seating?",
	// "any with wifi") are overwhelmingly refinements.
	if len(strings.Fields(normalized)) <= 6 && len(detected) > 0 {
		confidence = ConfidenceHigh
	}

	isFilter := matched > 0 || len(detected) > 0
	return Classification{
		IsFilter:        isFilter,
		IsNewSearch:     !isFilter,
		DetectedFilters: detected,
		MatchedPatterns: matched,
		Confidence:      confidence,
	}
}

// DetectFilters returns the named filters the message asks for, in the
// fixed application order.
func DetectFilters(message string) []string {
	normalized := strings.ToLower(message)
	var detected []string
	for _, name := range filterOrder {
		for _, p := range attributeFilters[name].patterns {
			if p.MatchString(normalized) {
				detected = append(detected, name)
				break
			}
		}
	}
	return detected
}
