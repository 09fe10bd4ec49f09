package enrich

import "github.com/comfrt/comfrt/internal/venue"

// signalSource produces one candidate value for a venue field. Sources are
// consulted in priority order and the first one that reports ok wins, so
// higher-quality signals (an external LLM analysis) shadow derived ones
// (keyword analysis, category inference) without per-field if/else chains.
type signalSource[T any] struct {
	name string
	get  func(*venue.Venue) (T, bool)
}

func resolve[T any](v *venue.Venue, sources []signalSource[T]) (T, bool) {
	for _, s := range sources {
		if val, ok := s.get(v); ok {
			return val, true
		}
	}
	var zero T
	return zero, false
}
