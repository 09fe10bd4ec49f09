package venue

import (
	"fmt"
	"strings"
)

// Preferences holds a user's stored sensory sensitivities. Sensitivity
// values run 1-5 where 5 is most sensitive; 3 is the neutral default.
type Preferences struct {
	NoiseSensitivity       int    `json:"noiseSensitivity"`
	LightSensitivity       int    `json:"lightSensitivity"`
	SpaciousnessPreference int    `json:"spaciousnessPreference"`
	Location               string `json:"location,omitempty"`
	OtherNeeds             string `json:"otherNeeds,omitempty"`
}

// DefaultPreferences returns the neutral preference set used before
// onboarding completes.
func DefaultPreferences() Preferences {
	return Preferences{
		NoiseSensitivity:       3,
		LightSensitivity:       3,
		SpaciousnessPreference: 3,
	}
}

// Clamp forces all sensitivity values into the 1-5 range. A zero value
// (field absent from stored data) resets to the neutral 3 rather than
// clamping to 1, so partially-populated records behave like defaults.
func (p Preferences) Clamp() Preferences {
	p.NoiseSensitivity = clampSensitivity(p.NoiseSensitivity)
	p.LightSensitivity = clampSensitivity(p.LightSensitivity)
	p.SpaciousnessPreference = clampSensitivity(p.SpaciousnessPreference)
	return p
}

func clampSensitivity(v int) int {
	if v == 0 {
		return 3
	}
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// FormatForPrompt renders the preferences as a context line for the external
// chat collaborator. Returns "" when every preference is neutral.
func (p Preferences) FormatForPrompt() string {
	var parts []string

	if p.NoiseSensitivity >= 4 {
		parts = append(parts, "high noise sensitivity - prefer quiet venues")
	} else if p.NoiseSensitivity <= 2 && p.NoiseSensitivity > 0 {
		parts = append(parts, "low noise sensitivity - moderate noise is okay")
	}

	if p.LightSensitivity >= 4 {
		parts = append(parts, "high light sensitivity - prefer dim or natural lighting")
	} else if p.LightSensitivity <= 2 && p.LightSensitivity > 0 {
		parts = append(parts, "low light sensitivity - bright lighting is fine")
	}

	if p.SpaciousnessPreference >= 4 {
		parts = append(parts, "strong preference for spacious, uncrowded venues")
	} else if p.SpaciousnessPreference <= 2 && p.SpaciousnessPreference > 0 {
		parts = append(parts, "cozy/intimate spaces are preferred")
	}

	if needs := strings.TrimSpace(p.OtherNeeds); needs != "" {
		parts = append(parts, fmt.Sprintf("other needs: %s", needs))
	}

	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("User preferences: %s", strings.Join(parts, "; "))
}
