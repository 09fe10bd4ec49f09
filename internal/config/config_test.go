package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfigDir, cfg.Storage.DataDir)
	assert.Equal(t, DefaultLocation, cfg.Search.Location)
	assert.Equal(t, DefaultResultLimit, cfg.Search.ResultLimit)
	assert.Equal(t, DefaultScoring.BlendCap, cfg.Scoring.BlendCap)
	assert.Equal(t, DefaultScoring.Concurrency, cfg.Scoring.Concurrency)
	assert.Equal(t, 3, cfg.Prefs.NoiseSensitivity)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoad_ReadsFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
search:
  location: "Portland, OR"
  result_limit: 10
scoring:
  blend_cap: 0.3
prefs:
  noise_sensitivity: 5
output:
  color: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Portland, OR", cfg.Search.Location)
	assert.Equal(t, 10, cfg.Search.ResultLimit)
	assert.Equal(t, 0.3, cfg.Scoring.BlendCap)
	assert.Equal(t, 5, cfg.Prefs.NoiseSensitivity)
	assert.False(t, cfg.Output.Color)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultScoring.Concurrency, cfg.Scoring.Concurrency)
	assert.Equal(t, 3, cfg.Prefs.LightSensitivity)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  result_limit: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.ResultLimit)
	assert.Equal(t, DefaultLocation, cfg.Search.Location)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config/comfrt"), expandPath("~/.config/comfrt"))
	assert.Equal(t, "/tmp/comfrt", expandPath("/tmp/comfrt"))
	assert.Equal(t, "relative/path", expandPath("relative/path"))
}

func TestDBPath(t *testing.T) {
	cfg := &Config{Storage: Storage{DataDir: "/tmp/comfrt-data"}}
	assert.Equal(t, "/tmp/comfrt-data/"+DefaultDBName, cfg.DBPath())

	empty := &Config{}
	assert.Equal(t, DefaultDBName, filepath.Base(empty.DBPath()))
	assert.Equal(t, ConfigDir(), filepath.Dir(empty.DBPath()))
}
