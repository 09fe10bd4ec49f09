package enrich

import (
	"fmt"

	"github.com/comfrt/comfrt/internal/venue"
)

// claudeRecommendation turns an LLM analysis into a recommendation line,
// preferring a direct review quote over the generated summary.
func claudeRecommendation(ca *venue.ClaudeAnalysis) (string, bool) {
	if ca == nil {
		return "", false
	}
	if ca.Quote != "" && ca.Quote != "null" {
		return fmt.Sprintf("%q", ca.Quote), true
	}
	if ca.Summary != "" {
		return ca.Summary, true
	}
	return "", false
}

// claudeAttributes maps LLM analysis fields onto comfort chips, capped at
// four.
func claudeAttributes(ca *venue.ClaudeAnalysis) []venue.Attribute {
	if ca == nil {
		return nil
	}
	var attrs []venue.Attribute

	switch ca.NoiseLevel {
	case "quiet":
		attrs = append(attrs, venue.Attribute{Variant: "quiet", Label: "Quiet"})
	case "moderate":
		attrs = append(attrs, venue.Attribute{Variant: "quiet", Label: "Moderate"})
	case "loud":
		attrs = append(attrs, venue.Attribute{Variant: "quiet", Label: "Can be loud"})
	}

	switch ca.Lighting {
	case "dim":
		attrs = append(attrs, venue.Attribute{Variant: "dim", Label: "Dim Lighting"})
	case "natural":
		attrs = append(attrs, venue.Attribute{Variant: "dim", Label: "Natural Light"})
	}

	if ca.Crowding == "spacious" {
		attrs = append(attrs, venue.Attribute{Variant: "spacious", Label: "Spacious"})
	}

	switch ca.BestFor {
	case "working":
		attrs = append(attrs, venue.Attribute{Variant: "wifi", Label: "Good for Work"})
	case "relaxing":
		attrs = append(attrs, venue.Attribute{Variant: "cozy", Label: "Relaxing"})
	case "conversation":
		attrs = append(attrs, venue.Attribute{Variant: "cozy", Label: "Good for Talking"})
	}

	if len(attrs) > 4 {
		attrs = attrs[:4]
	}
	return attrs
}
