// Package enrich attaches computed comfort fields to raw venue records:
// inferred sensory attributes, the comfort score (blended with review
// sentiment when reviews are present), the recommendation reason, and the
// comfort chips. When an external LLM analysis is attached to a venue its
// signals take precedence over the derived ones.
package enrich

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/comfrt/comfrt/internal/comfort"
	"github.com/comfrt/comfrt/internal/reviews"
	"github.com/comfrt/comfrt/internal/venue"
)

const (
	// defaultBlendCap bounds how much review sentiment can pull the
	// attribute-derived score. Tuned empirically; resist improving it.
	defaultBlendCap = 0.5

	defaultConcurrency = 4
)

// Enricher computes and attaches comfort fields to venues for one user's
// preferences.
type Enricher struct {
	prefs       venue.Preferences
	rng         *rand.Rand
	mu          sync.Mutex
	blendCap    float64
	concurrency int
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithRand sets the random source used for recommendation phrasing. A nil
// source falls back to the global one.
func WithRand(r *rand.Rand) Option {
	return func(e *Enricher) { e.rng = r }
}

// WithBlendCap overrides the review-sentiment blend cap.
func WithBlendCap(c float64) Option {
	return func(e *Enricher) { e.blendCap = c }
}

// WithConcurrency bounds how many venues EnhanceAll works on at once.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New returns an Enricher for the given preferences.
func New(prefs venue.Preferences, opts ...Option) *Enricher {
	e := &Enricher{
		prefs:       prefs,
		blendCap:    defaultBlendCap,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enhance computes the venue's comfort fields in place: noise level and
// ambiance are inferred when the provider left them empty, reviews are
// analyzed for sentiment and quotes, and the score, reason, and chips are
// resolved through their signal chains.
func (e *Enricher) Enhance(v *venue.Venue) {
	if noise, ok := resolve(v, noiseSources); ok {
		v.NoiseLevel = noise
	}
	if len(v.Ambiance) == 0 {
		v.Ambiance = inferAmbiance(v.Price)
	}

	if len(v.Reviews) > 0 {
		analysis := reviews.Analyze(v.Reviews)
		v.ReviewAnalysis = &analysis
		v.ComfortQuotes = reviews.ExtractQuotes(v.Reviews)
	}

	score := comfort.Calculate(v, e.prefs).Score
	if v.ReviewAnalysis != nil && v.ReviewAnalysis.Confidence > 0 {
		score = e.blendReviewScore(score, v.ReviewAnalysis)
		v.ReviewComfortSummary = reviews.Summary(v.ReviewAnalysis)
	}
	v.ComfortScore = score
	if s, ok := resolve(v, scoreSources); ok {
		v.ComfortScore = venue.ClampScore(s)
	}

	if reason, ok := resolve(v, e.reasonSources()); ok {
		v.RecommendationReason = reason
	}
	if attrs, ok := resolve(v, attributeSources); ok {
		v.ComfortAttributes = attrs
	}
}

// EnhanceAll enriches every venue concurrently and returns them sorted by
// comfort score, highest first. limit > 0 truncates the sorted result.
func (e *Enricher) EnhanceAll(ctx context.Context, venues []venue.Venue, limit int) ([]venue.Venue, error) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range venues {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.Enhance(&venues[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].ComfortScore > venues[j].ComfortScore
	})
	if limit > 0 && len(venues) > limit {
		venues = venues[:limit]
	}
	return venues, nil
}

// blendReviewScore pulls the attribute-derived score toward the review
// sentiment score, weighted by analysis confidence up to the blend cap.
func (e *Enricher) blendReviewScore(score int, analysis *venue.ReviewAnalysis) int {
	weight := math.Min(float64(analysis.Confidence)/100, e.blendCap)
	blended := float64(score)*(1-weight) + float64(analysis.SentimentScore)*weight
	return venue.ClampScore(int(math.Round(blended)))
}

// noiseSources resolves the venue's noise level: LLM verdict first, then
// the provider field, then category and price inference.
var noiseSources = []signalSource[string]{
	{name: "claude", get: func(v *venue.Venue) (string, bool) {
		if v.ClaudeAnalysis == nil {
			return "", false
		}
		switch v.ClaudeAnalysis.NoiseLevel {
		case "quiet":
			return "quiet", true
		case "moderate":
			return "average", true
		case "loud":
			return "loud", true
		}
		return "", false
	}},
	{name: "provider", get: func(v *venue.Venue) (string, bool) {
		return v.NoiseLevel, v.NoiseLevel != ""
	}},
	{name: "inference", get: func(v *venue.Venue) (string, bool) {
		return inferNoiseLevel(v), true
	}},
}

var scoreSources = []signalSource[int]{
	{name: "claude", get: func(v *venue.Venue) (int, bool) {
		if v.ClaudeAnalysis == nil || v.ClaudeAnalysis.ComfortScore == nil {
			return 0, false
		}
		return *v.ClaudeAnalysis.ComfortScore, true
	}},
}

var attributeSources = []signalSource[[]venue.Attribute]{
	{name: "claude", get: func(v *venue.Venue) ([]venue.Attribute, bool) {
		attrs := claudeAttributes(v.ClaudeAnalysis)
		return attrs, len(attrs) > 0
	}},
	{name: "heuristic", get: func(v *venue.Venue) ([]venue.Attribute, bool) {
		return comfort.Attributes(v), true
	}},
}

func (e *Enricher) reasonSources() []signalSource[string] {
	return []signalSource[string]{
		{name: "claude", get: func(v *venue.Venue) (string, bool) {
			return claudeRecommendation(v.ClaudeAnalysis)
		}},
		{name: "heuristic", get: func(v *venue.Venue) (string, bool) {
			e.mu.Lock()
			defer e.mu.Unlock()
			return comfort.Reason(v, e.prefs, e.rng), true
		}},
	}
}

// inferNoiseLevel guesses a noise level from categories and price when the
// provider reports none. Coffee and tea shops trend quiet, bars loud, and
// expensive rooms quiet.
func inferNoiseLevel(v *venue.Venue) string {
	cats := strings.Join(v.CategoryAliases(), " ")
	switch {
	case strings.Contains(cats, "coffee") || strings.Contains(cats, "tea") || strings.Contains(cats, "cafe"):
		return "quiet"
	case strings.Contains(cats, "bar") || strings.Contains(cats, "pub") || strings.Contains(cats, "sports"):
		return "loud"
	case v.Price == "$$$" || v.Price == "$$$$":
		return "quiet"
	}
	return "average"
}

func inferAmbiance(price string) []string {
	if price == "$$$" || price == "$$$$" {
		return []string{"intimate"}
	}
	return []string{"casual"}
}
