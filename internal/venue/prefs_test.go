package venue

import (
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Preferences
		want Preferences
	}{
		{"zero resets to neutral", Preferences{}, Preferences{NoiseSensitivity: 3, LightSensitivity: 3, SpaciousnessPreference: 3}},
		{"above range", Preferences{NoiseSensitivity: 9, LightSensitivity: 6, SpaciousnessPreference: 7}, Preferences{NoiseSensitivity: 5, LightSensitivity: 5, SpaciousnessPreference: 5}},
		{"below range", Preferences{NoiseSensitivity: -1, LightSensitivity: -3, SpaciousnessPreference: -2}, Preferences{NoiseSensitivity: 1, LightSensitivity: 1, SpaciousnessPreference: 1}},
		{"in range unchanged", Preferences{NoiseSensitivity: 2, LightSensitivity: 4, SpaciousnessPreference: 5}, Preferences{NoiseSensitivity: 2, LightSensitivity: 4, SpaciousnessPreference: 5}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFormatForPrompt(t *testing.T) {
	if got := (Preferences{NoiseSensitivity: 3, LightSensitivity: 3, SpaciousnessPreference: 3}).FormatForPrompt(); got != "" {
		t.Errorf("expected empty prompt for neutral prefs, got %q", got)
	}

	p := Preferences{NoiseSensitivity: 5, LightSensitivity: 2, SpaciousnessPreference: 3, OtherNeeds: "no strobe lights"}
	got := p.FormatForPrompt()
	for _, want := range []string{"high noise sensitivity", "low light sensitivity", "no strobe lights"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q: %q", want, got)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0}, {0, 0}, {55, 55}, {100, 100}, {140, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCategoryAliases(t *testing.T) {
	v := &Venue{Categories: []Category{
		{Alias: "coffee", Title: "Coffee & Tea"},
		{Title: "Cafe"},
		{},
	}}
	got := v.CategoryAliases()
	if len(got) != 2 || got[0] != "coffee" || got[1] != "cafe" {
		t.Errorf("unexpected aliases: %v", got)
	}
}
