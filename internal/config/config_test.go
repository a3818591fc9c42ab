package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, DefaultPreferencesFile, cfg.Preferences.Path)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.Path)
	assert.Zero(t, cfg.Fetch.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytassistant.yaml")
	doc := `
log:
  level: debug
  format: json
ffmpeg:
  path: /opt/ffmpeg/bin/ffmpeg
fetch:
  timeout: 90s
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpeg.Path)
	assert.Equal(t, 90*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultPreferencesFile, cfg.Preferences.Path)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytassistant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))

	t.Setenv("YTASSISTANT_LOG_LEVEL", "warn")
	t.Setenv("YTASSISTANT_PREFERENCES_PATH", "/tmp/prefs.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/prefs.json", cfg.Preferences.Path)
}
