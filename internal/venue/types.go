// Package venue defines the data model shared by the comfort scoring engine:
// venue records as delivered by the external search layer, the review and
// analysis records derived from them, and user sensory preferences.
package venue

import "strings"

// Category is a venue category as reported by the search provider.
type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// Location is the street-level location of a venue.
type Location struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// Coordinates holds the venue's geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Hours holds provider opening-hours data. Only the open-now flag is
// consumed by this engine (the open_now follow-up filter).
type Hours struct {
	IsOpenNow bool `json:"is_open_now"`
}

// Review is a single venue review. Reviews are ephemeral inputs to the
// sentiment analyzer and are never persisted.
type Review struct {
	Text   string     `json:"text"`
	Rating float64    `json:"rating"`
	User   ReviewUser `json:"user"`
}

// ReviewUser identifies a review's author.
type ReviewUser struct {
	Name string `json:"name"`
}

// Attribute is a short comfort chip surfaced next to a venue. Variant is one
// of the fixed chip vocabulary: quiet, dim, spacious, cozy, wifi, default.
type Attribute struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
}

// Quote is a review sentence that mentions a comfort keyword.
type Quote struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	Keyword   string `json:"keyword"`
	User      string `json:"user"`
}

// Mention is a single matched comfort keyword, attributed to its category.
type Mention struct {
	Category  string `json:"category"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

// CategoryScore is the per-category breakdown of a review analysis.
type CategoryScore struct {
	Score    int `json:"score"`
	Mentions int `json:"mentions"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// ReviewAnalysis is the aggregate comfort signal extracted from review text.
// With no reviews, Confidence is 0 and every category score is the neutral 50.
type ReviewAnalysis struct {
	SentimentScore int                      `json:"sentimentScore"`
	Confidence     int                      `json:"confidence"`
	TotalMentions  int                      `json:"totalMentions"`
	ReviewCount    int                      `json:"reviewCount"`
	Highlights     []Mention                `json:"highlights"`
	Concerns       []Mention                `json:"concerns"`
	Breakdown      map[string]CategoryScore `json:"breakdown"`
}

// ClaudeAnalysis is an externally-computed LLM review analysis. All fields
// are optional; when present it takes precedence over the engine's own
// derived signals. This engine never calls the LLM itself.
type ClaudeAnalysis struct {
	ComfortScore *int   `json:"comfort_score"`
	NoiseLevel   string `json:"noise_level"`
	Lighting     string `json:"lighting"`
	Crowding     string `json:"crowding"`
	BestFor      string `json:"best_for"`
	BestTimes    string `json:"best_times"`
	Summary      string `json:"summary"`
	Quote        string `json:"quote"`
	Warnings     string `json:"warnings"`
	Confidence   string `json:"confidence"`
}

// Venue is a venue record. The identity and sensory attribute fields arrive
// from the external search layer; the comfort fields are computed by this
// engine and attached to the record before it is handed to the rendering or
// chat layers.
type Venue struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"image_url,omitempty"`
	Categories  []Category  `json:"categories"`
	Price       string      `json:"price"`
	Rating      float64     `json:"rating"`
	Location    Location    `json:"location"`
	Coordinates Coordinates `json:"coordinates"`

	// Sensory attributes. Optional; inferred during enrichment when absent.
	NoiseLevel     string   `json:"noise_level,omitempty"`
	Ambiance       []string `json:"ambiance,omitempty"`
	OutdoorSeating bool     `json:"outdoor_seating,omitempty"`
	Reservations   bool     `json:"reservations,omitempty"`
	Wifi           string   `json:"wifi,omitempty"`

	// Attributes is the raw provider attribute map, kept for the follow-up
	// filter's nested path lookups (e.g. attributes.restaurants_reservations).
	Attributes map[string]any `json:"attributes,omitempty"`
	Hours      []Hours        `json:"hours,omitempty"`

	Reviews []Review `json:"reviews,omitempty"`

	// Computed comfort fields.
	ComfortScore         int             `json:"comfort_score"`
	ComfortAttributes    []Attribute     `json:"comfort_attributes,omitempty"`
	RecommendationReason string          `json:"recommendation_reason,omitempty"`
	ReviewComfortSummary string          `json:"review_comfort_summary,omitempty"`
	ReviewAnalysis       *ReviewAnalysis `json:"reviewAnalysis,omitempty"`
	ComfortQuotes        []Quote         `json:"comfortQuotes,omitempty"`
	ClaudeAnalysis       *ClaudeAnalysis `json:"claudeAnalysis,omitempty"`
}

// CategoryAliases returns the lower-cased alias (or title, when alias is
// empty) of every category on the venue.
func (v *Venue) CategoryAliases() []string {
	aliases := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		name := c.Alias
		if name == "" {
			name = c.Title
		}
		if name != "" {
			aliases = append(aliases, strings.ToLower(name))
		}
	}
	return aliases
}

// HasAmbiance reports whether the venue carries the given ambiance tag.
func (v *Venue) HasAmbiance(tag string) bool {
	for _, a := range v.Ambiance {
		if a == tag {
			return true
		}
	}
	return false
}

// ClampScore clamps a comfort score into the 0-100 range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
