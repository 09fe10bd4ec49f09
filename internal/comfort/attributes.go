package comfort

import (
	"strings"

	"github.com/comfrt/comfrt/internal/venue"
)

// maxChips caps how many comfort attribute chips a venue carries.
const maxChips = 4

// Attributes derives the comfort chips shown on a venue card from its
// sensory attributes. At most four chips are returned, in signal-strength
// order: noise first, then ambiance, seating, connectivity, price.
func Attributes(v *venue.Venue) []venue.Attribute {
	var attrs []venue.Attribute

	switch v.NoiseLevel {
	case NoiseQuiet:
		attrs = append(attrs, venue.Attribute{Variant: "quiet", Label: "Quiet"})
	case NoiseAverage:
		attrs = append(attrs, venue.Attribute{Variant: "quiet", Label: "Moderate"})
	}

	if v.HasAmbiance("intimate") || v.HasAmbiance("romantic") {
		attrs = append(attrs, venue.Attribute{Variant: "dim", Label: "Intimate"})
	}
	if v.HasAmbiance("cozy") || v.HasAmbiance("casual") {
		attrs = append(attrs, venue.Attribute{Variant: "cozy", Label: "Cozy"})
	}

	if v.OutdoorSeating {
		attrs = append(attrs, venue.Attribute{Variant: "spacious", Label: "Outdoor Seating"})
	}

	if v.Wifi != "" && v.Wifi != "no" {
		attrs = append(attrs, venue.Attribute{Variant: "wifi", Label: "WiFi"})
	} else if isCafeLike(v) {
		attrs = append(attrs, venue.Attribute{Variant: "wifi", Label: "WiFi Likely"})
	}

	if len(v.Price) >= 3 {
		attrs = append(attrs, venue.Attribute{Variant: "spacious", Label: "Upscale"})
	}

	if len(attrs) > maxChips {
		attrs = attrs[:maxChips]
	}
	return attrs
}

func isCafeLike(v *venue.Venue) bool {
	joined := strings.ToLower(strings.Join(v.CategoryAliases(), " "))
	return strings.Contains(joined, "coffee") || strings.Contains(joined, "cafe")
}
