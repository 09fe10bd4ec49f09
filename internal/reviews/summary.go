package reviews

import (
	"fmt"
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// Summary renders a short prose summary of a review analysis for the venue
// detail view.
func Summary(analysis *venue.ReviewAnalysis) string {
	if analysis == nil || analysis.Confidence == 0 {
		return "We don't have enough review data to assess comfort levels for this venue."
	}

	var parts []string

	switch {
	case analysis.SentimentScore >= 70:
		parts = append(parts, "Reviewers frequently mention this as a comfortable, calm spot.")
	case analysis.SentimentScore >= 50:
		parts = append(parts, "Reviews suggest this venue has moderate comfort levels.")
	default:
		parts = append(parts, "Reviews indicate this venue may be more lively or stimulating.")
	}

	if len(analysis.Highlights) > 0 {
		parts = append(parts, fmt.Sprintf("People often note it's %q.", analysis.Highlights[0].Text))
	}
	if len(analysis.Concerns) > 0 {
		parts = append(parts, fmt.Sprintf("Some mention it can be %q at times.", analysis.Concerns[0].Text))
	}

	if noise := analysis.Breakdown[CategoryNoise]; noise.Score >= 70 && noise.Mentions >= 2 {
		parts = append(parts, "Noise levels are generally kept low here.")
	}
	if space := analysis.Breakdown[CategorySpace]; space.Score >= 70 && space.Mentions >= 2 {
		parts = append(parts, "The space feels uncrowded and comfortable.")
	}

	return strings.Join(parts, " ")
}
