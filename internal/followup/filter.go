package followup

import (
	"strconv"
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// Result is the outcome of applying follow-up filters to a result set.
// Applied lists only the filters that actually reduced the set; NoMatch is
// set when at least one filter applied and nothing survived.
type Result struct {
	Venues  []venue.Venue `json:"venues"`
	Applied []string      `json:"applied"`
	NoMatch bool          `json:"noMatch"`
}

// Apply runs the named filters over venues in the fixed filter order. Filters
// combine as AND: each one narrows the output of the previous. A filter that
// would not remove anything is kept in effect but not reported as applied.
func Apply(venues []venue.Venue, names []string) Result {
	if len(venues) == 0 || len(names) == 0 {
		return Result{Venues: venues}
	}

	filtered := venues
	var applied []string
	for _, name := range orderFilters(names) {
		f, ok := attributeFilters[name]
		if !ok {
			continue
		}
		next := make([]venue.Venue, 0, len(filtered))
		for i := range filtered {
			if matchesFilter(&filtered[i], f) {
				next = append(next, filtered[i])
			}
		}
		if len(next) < len(filtered) {
			applied = append(applied, name)
		}
		filtered = next
	}

	return Result{
		Venues:  filtered,
		Applied: applied,
		NoMatch: len(filtered) == 0 && len(applied) > 0,
	}
}

// orderFilters reorders the requested names into the fixed application
// order, dropping duplicates and unknown names.
func orderFilters(names []string) []string {
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}
	ordered := make([]string, 0, len(names))
	for _, n := range filterOrder {
		if requested[n] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

func matchesFilter(v *venue.Venue, f attributeFilter) bool {
	if f.scoreFilter != nil {
		return f.scoreFilter(v)
	}

	if f.venueField != "" {
		if truthyFilterValue(fieldValue(v, f.venueField)) {
			return true
		}
	}
	if f.fallbackField != "" {
		if truthyFilterValue(fieldValue(v, f.fallbackField)) {
			return true
		}
	}

	// The comfort chips encode the same attributes in display form.
	for _, attr := range v.ComfortAttributes {
		for _, p := range f.patterns {
			if p.MatchString(strings.ToLower(attr.Label)) || p.MatchString(strings.ToLower(attr.Variant)) {
				return true
			}
		}
	}

	if f.searchReviews {
		text := reviewText(v)
		for _, p := range f.patterns {
			if p.MatchString(text) {
				return true
			}
		}
	}
	return false
}

// fieldValue resolves a dotted path against a venue, supporting the raw
// provider attribute map ("attributes.wifi"), indexed hours
// ("hours[0].is_open_now"), and the flat convenience fields.
func fieldValue(v *venue.Venue, path string) any {
	head, rest, _ := strings.Cut(path, ".")
	switch {
	case head == "attributes":
		return mapValue(v.Attributes, rest)
	case strings.HasPrefix(head, "hours["):
		idx, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(head, "hours["), "]"))
		if err != nil || idx < 0 || idx >= len(v.Hours) {
			return nil
		}
		if rest == "is_open_now" {
			return v.Hours[idx].IsOpenNow
		}
		return nil
	case path == "outdoor_seating":
		return v.OutdoorSeating
	case path == "reservations":
		return v.Reservations
	case path == "wifi":
		if v.Wifi == "" {
			return nil
		}
		return v.Wifi
	case path == "is_open_now":
		if len(v.Hours) > 0 {
			return v.Hours[0].IsOpenNow
		}
		return nil
	}
	return nil
}

func mapValue(m map[string]any, path string) any {
	if m == nil || path == "" {
		return nil
	}
	head, rest, more := strings.Cut(path, ".")
	val, ok := m[head]
	if !ok {
		return nil
	}
	if !more {
		return val
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	return mapValue(nested, rest)
}

// truthyFilterValue reports whether a looked-up attribute value counts as
// the venue having the attribute. Strings are truthy unless they deny it
// ("no", "none"); anything non-boolean and non-string does not match.
func truthyFilterValue(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		lower := strings.ToLower(v)
		return lower != "no" && lower != "none"
	default:
		return false
	}
}

// reviewText concatenates every text field a filter pattern might match:
// the recommendation reason, summaries, quotes, and raw review text.
func reviewText(v *venue.Venue) string {
	var b strings.Builder
	b.WriteString(v.RecommendationReason)
	b.WriteByte(' ')
	b.WriteString(v.ReviewComfortSummary)
	if v.ClaudeAnalysis != nil {
		b.WriteByte(' ')
		b.WriteString(v.ClaudeAnalysis.Summary)
	}
	for _, q := range v.ComfortQuotes {
		b.WriteByte(' ')
		b.WriteString(q.Text)
	}
	for _, r := range v.Reviews {
		b.WriteByte(' ')
		b.WriteString(r.Text)
	}
	return strings.ToLower(b.String())
}
