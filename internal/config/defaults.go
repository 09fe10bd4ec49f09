// Package config provides configuration loading and defaults for comfrt.
package config

// DefaultConfigDir is the default location for comfrt configuration.
const DefaultConfigDir = "~/.config/comfrt"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "comfrt.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultLocation is used when a search gives no location.
const DefaultLocation = "San Francisco, CA"

// DefaultResultLimit caps how many venues a search surfaces.
const DefaultResultLimit = 5

// DefaultSearch holds the default search settings.
var DefaultSearch = Search{
	Location:    DefaultLocation,
	ResultLimit: DefaultResultLimit,
}

// DefaultScoring holds the default scoring settings. The blend cap bounds
// how far review sentiment can pull an attribute-derived comfort score.
var DefaultScoring = Scoring{
	BlendCap:    0.5,
	Concurrency: 4,
}

// DefaultPrefs holds the neutral sensitivity preferences used until the
// user stores their own.
var DefaultPrefs = Prefs{
	NoiseSensitivity:       3,
	LightSensitivity:       3,
	SpaciousnessPreference: 3,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
