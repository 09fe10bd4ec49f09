package comfort

// Label converts a comfort score into its display label. These thresholds
// are shared by the map color scale and the UI badges, so every consumer
// must go through this function.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Very Calm"
	case score >= 65:
		return "Calm"
	case score >= 50:
		return "Moderate"
	case score >= 35:
		return "Lively"
	default:
		return "Very Lively"
	}
}
