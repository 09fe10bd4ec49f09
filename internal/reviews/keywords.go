// Package reviews extracts comfort signals from raw review text. It scans
// for a fixed vocabulary of comfort keywords organized by sensory category
// and produces per-category scores, notable quotes, and a prose summary.
package reviews

// Sensory categories, in scoring order.
const (
	CategoryNoise    = "noise"
	CategoryLighting = "lighting"
	CategorySpace    = "space"
	CategoryAmbiance = "ambiance"
	CategorySensory  = "sensory"
)

// Categories lists the sensory categories in their fixed scoring order.
var Categories = []string{
	CategoryNoise, CategoryLighting, CategorySpace, CategoryAmbiance, CategorySensory,
}

// CategoryWeights are the fixed per-category weights used for the overall
// sentiment score. Noise dominates because it is the signal sensory-sensitive
// users care about most.
var CategoryWeights = map[string]float64{
	CategoryNoise:    0.35,
	CategoryLighting: 0.15,
	CategorySpace:    0.25,
	CategoryAmbiance: 0.15,
	CategorySensory:  0.10,
}

// positiveSignals maps each category to keywords indicating comfort.
var positiveSignals = map[string][]string{
	CategoryNoise: {
		"quiet", "peaceful", "calm", "silent", "soft music", "low music",
		"no music", "relaxing", "serene", "hushed", "tranquil", "soothing",
		"can hear yourself think", "conversation friendly", "not loud",
	},
	CategoryLighting: {
		"dim", "soft lighting", "candlelit", "cozy lighting", "not too bright",
		"warm lighting", "ambient", "gentle light", "romantic lighting",
		"natural light", "soft glow", "low lighting",
	},
	CategorySpace: {
		"spacious", "uncrowded", "private", "secluded", "intimate", "roomy",
		"plenty of space", "not packed", "spread out", "comfortable seating",
		"booth", "corner table", "tucked away", "never crowded",
	},
	CategoryAmbiance: {
		"relaxing", "soothing", "tranquil", "serene", "chill", "laid back",
		"cozy", "comfortable", "welcoming", "pleasant", "mellow", "zen",
		"stress-free", "easy going", "perfect for working", "great for reading",
	},
	CategorySensory: {
		"not overwhelming", "easy on the senses", "calming atmosphere",
		"no strong smells", "fresh air", "well-ventilated", "clean",
		"comfortable temperature", "not stuffy",
	},
}

// negativeSignals maps each category to keywords indicating discomfort.
var negativeSignals = map[string][]string{
	CategoryNoise: {
		"loud", "noisy", "blasting music", "screaming", "chaotic", "deafening",
		"can't hear", "yelling", "rowdy", "boisterous", "ear-splitting",
		"obnoxious music", "too loud", "very noisy", "loud crowd",
	},
	CategoryLighting: {
		"harsh", "bright lights", "fluorescent", "glaring", "too bright",
		"blinding", "sterile lighting", "clinical", "no ambiance",
	},
	CategorySpace: {
		"crowded", "packed", "cramped", "tiny", "shoulder to shoulder",
		"elbow to elbow", "sardines", "no room", "claustrophobic",
		"long wait", "always busy", "jam packed", "standing room only",
	},
	CategoryAmbiance: {
		"hectic", "stressful", "overwhelming", "chaotic", "frantic",
		"rushed", "uncomfortable", "tense", "anxiety-inducing", "crazy busy",
	},
	CategorySensory: {
		"overwhelming", "overstimulating", "strong smells", "stuffy",
		"bad ventilation", "greasy smell", "too hot", "freezing cold",
		"sensory overload",
	},
}

// PositiveKeywords returns every positive comfort keyword, flattened in
// category order. The comfort score calculator counts these directly.
func PositiveKeywords() []string {
	return flatten(positiveSignals)
}

// NegativeKeywords returns every negative comfort keyword, flattened in
// category order.
func NegativeKeywords() []string {
	return flatten(negativeSignals)
}

func flatten(signals map[string][]string) []string {
	var all []string
	for _, cat := range Categories {
		all = append(all, signals[cat]...)
	}
	return all
}
