package reviews

import (
	"math"
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

const (
	maxHighlights = 5
	maxConcerns   = 3

	// mentionCap limits how much any single category's mention volume can
	// amplify its weight in the overall score.
	mentionCap = 5
)

// Analyze scans the given reviews for comfort keywords and returns the
// per-category breakdown plus an overall weighted sentiment score this
// engine blends into the comfort score.
//
// Scoring:
//   - category score = round(positive / (positive+negative) * 100),
//     neutral 50 when the category has no mentions
//   - overall = weighted average of category scores, each weight scaled by
//     min(mentions, 5); 50 when nothing matched at all
//   - confidence = min(100, round(totalMentions / reviewCount * 25))
//
// An empty review list short-circuits to the neutral record: confidence 0
// and every category at 50.
func Analyze(revs []venue.Review) venue.ReviewAnalysis {
	if len(revs) == 0 {
		return neutralAnalysis()
	}

	var sb strings.Builder
	for _, r := range revs {
		sb.WriteString(strings.ToLower(r.Text))
		sb.WriteString(" ")
	}
	allText := sb.String()

	breakdown := make(map[string]venue.CategoryScore, len(Categories))
	var highlights, concerns []venue.Mention

	for _, category := range Categories {
		var positive, negative int

		for _, keyword := range positiveSignals[category] {
			n := strings.Count(allText, keyword)
			if n == 0 {
				continue
			}
			positive += n
			if len(highlights) < maxHighlights && !containsKeyword(highlights, keyword) {
				highlights = append(highlights, venue.Mention{
					Category:  category,
					Text:      keyword,
					Sentiment: "positive",
				})
			}
		}

		for _, keyword := range negativeSignals[category] {
			n := strings.Count(allText, keyword)
			if n == 0 {
				continue
			}
			negative += n
			if len(concerns) < maxConcerns && !containsKeyword(concerns, keyword) {
				concerns = append(concerns, venue.Mention{
					Category:  category,
					Text:      keyword,
					Sentiment: "negative",
				})
			}
		}

		score := 50
		if positive+negative > 0 {
			score = int(math.Round(float64(positive) / float64(positive+negative) * 100))
		}

		breakdown[category] = venue.CategoryScore{
			Score:    score,
			Mentions: positive + negative,
			Positive: positive,
			Negative: negative,
		}
	}

	var weightedSum, totalWeight float64
	totalMentions := 0

	for _, category := range Categories {
		cs := breakdown[category]
		if cs.Mentions > 0 {
			scale := float64(min(cs.Mentions, mentionCap))
			weightedSum += float64(cs.Score) * CategoryWeights[category] * scale
			totalWeight += CategoryWeights[category] * scale
		}
		totalMentions += cs.Mentions
	}

	sentiment := 50
	if totalWeight > 0 {
		sentiment = int(math.Round(weightedSum / totalWeight))
	}

	confidence := int(math.Round(float64(totalMentions) / float64(len(revs)) * 25))
	if confidence > 100 {
		confidence = 100
	}

	return venue.ReviewAnalysis{
		SentimentScore: sentiment,
		Confidence:     confidence,
		TotalMentions:  totalMentions,
		ReviewCount:    len(revs),
		Highlights:     highlights,
		Concerns:       concerns,
		Breakdown:      breakdown,
	}
}

// containsKeyword reports whether any already-recorded mention's text
// contains the keyword, so near-duplicate keywords collapse into one chip.
func containsKeyword(mentions []venue.Mention, keyword string) bool {
	for _, m := range mentions {
		if strings.Contains(m.Text, keyword) {
			return true
		}
	}
	return false
}

func neutralAnalysis() venue.ReviewAnalysis {
	breakdown := make(map[string]venue.CategoryScore, len(Categories))
	for _, category := range Categories {
		breakdown[category] = venue.CategoryScore{Score: 50}
	}
	return venue.ReviewAnalysis{
		SentimentScore: 50,
		Confidence:     0,
		Breakdown:      breakdown,
	}
}
