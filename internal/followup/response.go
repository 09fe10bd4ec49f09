package followup

import (
	"fmt"
	"strings"
)

// FilterLabel returns the human-readable label for a named filter.
func FilterLabel(name string) string {
	if f, ok := attributeFilters[name]; ok {
		return f.label
	}
	return strings.ReplaceAll(name, "_", " ")
}

// Response phrases the outcome of a filter pass. originalCount is the size
// of the result set before filtering.
func Response(result Result, originalCount int) string {
	labels := make([]string, len(result.Applied))
	for i, name := range result.Applied {
		labels[i] = FilterLabel(name)
	}
	joined := strings.Join(labels, " and ")

	switch {
	case result.NoMatch:
		return fmt.Sprintf(
			"None of the %d places I found have %s. Want me to search for new places that do?",
			originalCount, joined)
	case len(result.Applied) == 0:
		return "All of these places should work for that. Anything else you'd like to narrow down?"
	case len(result.Venues) == 1:
		return fmt.Sprintf("Just one of them has %s:", joined)
	default:
		return fmt.Sprintf("%d of them have %s:", len(result.Venues), joined)
	}
}
