package comfort

import (
	"math/rand/v2"

	"github.com/comfrt/comfrt/internal/venue"
)

// fallbackReason is used when no attribute-specific reason applies.
const fallbackReason = "A comfortable spot that matches your preferences"

// ReasonCandidates builds the list of recommendation reasons that apply to
// the venue. Exposed separately from Reason so tests and callers can assert
// membership without fighting the random pick.
func ReasonCandidates(v *venue.Venue, prefs venue.Preferences) []string {
	var reasons []string

	if v.NoiseLevel == NoiseQuiet {
		reasons = append(reasons, "Known for its peaceful, quiet atmosphere")
	}
	if v.HasAmbiance("intimate") || v.HasAmbiance("cozy") {
		reasons = append(reasons, "Intimate setting perfect for focused conversation")
	}
	if v.OutdoorSeating {
		reasons = append(reasons, "Outdoor seating available for when you need fresh air")
	}
	if v.Reservations {
		reasons = append(reasons, "Takes reservations so you can plan your visit")
	}
	if prefs.NoiseSensitivity >= 4 && v.ComfortScore >= 70 {
		reasons = append(reasons, "Highly rated for low noise levels")
	}

	return reasons
}

// Reason picks one applicable recommendation reason for the venue. The
// random source is injected so callers can pin the choice; a nil rng falls
// back to the shared global source.
func Reason(v *venue.Venue, prefs venue.Preferences, rng *rand.Rand) string {
	reasons := ReasonCandidates(v, prefs)
	if len(reasons) == 0 {
		return fallbackReason
	}
	if rng != nil {
		return reasons[rng.IntN(len(reasons))]
	}
	return reasons[rand.IntN(len(reasons))]
}
