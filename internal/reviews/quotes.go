package reviews

import (
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

const (
	maxQuotes      = 5
	maxQuoteSource = 10 // reviews scanned for quotes
	minQuoteLen    = 20
	maxQuoteLen    = 150
)

// ExtractQuotes pulls notable comfort-related sentences from the first few
// reviews. A sentence qualifies when it is a readable length and mentions
// any comfort keyword; it is tagged positive when any positive keyword
// appears, negative otherwise.
func ExtractQuotes(revs []venue.Review) []venue.Quote {
	if len(revs) == 0 {
		return nil
	}

	allKeywords := append(PositiveKeywords(), NegativeKeywords()...)

	var quotes []venue.Quote
	for _, review := range revs[:min(len(revs), maxQuoteSource)] {
		for _, sentence := range splitSentences(review.Text) {
			trimmed := strings.TrimSpace(sentence)
			if len(trimmed) <= minQuoteLen || len(trimmed) >= maxQuoteLen {
				continue
			}
			lower := strings.ToLower(trimmed)
			for _, keyword := range allKeywords {
				if !strings.Contains(lower, keyword) {
					continue
				}
				quotes = append(quotes, venue.Quote{
					Text:      trimmed,
					Sentiment: quoteSentiment(lower),
					Keyword:   keyword,
					User:      authorName(review),
				})
				break
			}
			if len(quotes) >= maxQuotes {
				return quotes
			}
		}
	}
	return quotes
}

// splitSentences breaks review text on sentence-ending punctuation.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// quoteSentiment tags a sentence positive if it contains any positive
// keyword, even when the matched keyword was negative — "not loud" should
// read as praise.
func quoteSentiment(lower string) string {
	for _, keyword := range PositiveKeywords() {
		if strings.Contains(lower, keyword) {
			return "positive"
		}
	}
	return "negative"
}

func authorName(r venue.Review) string {
	if r.User.Name != "" {
		return r.User.Name
	}
	return "Anonymous"
}
