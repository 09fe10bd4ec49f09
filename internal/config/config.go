package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level comfrt configuration.
type Config struct {
	Storage Storage `mapstructure:"storage"`
	Search  Search  `mapstructure:"search"`
	Scoring Scoring `mapstructure:"scoring"`
	Prefs   Prefs   `mapstructure:"prefs"`
	Output  Output  `mapstructure:"output"`
}

// Storage defines where comfrt keeps its local data.
type Storage struct {
	DataDir string `mapstructure:"data_dir"`
}

// Search defines venue search settings.
type Search struct {
	Location    string `mapstructure:"location"`
	ResultLimit int    `mapstructure:"result_limit"`
}

// Scoring defines tunables for the comfort scoring pipeline.
type Scoring struct {
	BlendCap    float64 `mapstructure:"blend_cap"`
	Concurrency int     `mapstructure:"concurrency"`
}

// Prefs defines fallback sensitivity preferences (1-5 scales). Stored
// preferences take priority over these.
type Prefs struct {
	NoiseSensitivity       int    `mapstructure:"noise_sensitivity"`
	LightSensitivity       int    `mapstructure:"light_sensitivity"`
	SpaciousnessPreference int    `mapstructure:"spaciousness_preference"`
	OtherNeeds             string `mapstructure:"other_needs"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("storage.data_dir", DefaultConfigDir)
	v.SetDefault("search.location", DefaultSearch.Location)
	v.SetDefault("search.result_limit", DefaultSearch.ResultLimit)
	v.SetDefault("scoring.blend_cap", DefaultScoring.BlendCap)
	v.SetDefault("scoring.concurrency", DefaultScoring.Concurrency)
	v.SetDefault("prefs.noise_sensitivity", DefaultPrefs.NoiseSensitivity)
	v.SetDefault("prefs.light_sensitivity", DefaultPrefs.LightSensitivity)
	v.SetDefault("prefs.spaciousness_preference", DefaultPrefs.SpaciousnessPreference)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database under the configured
// data directory.
func (c *Config) DBPath() string {
	dir := c.Storage.DataDir
	if dir == "" {
		dir = DefaultConfigDir
	}
	return filepath.Join(expandPath(dir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
