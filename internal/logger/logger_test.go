package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := newWithConsole(Config{Level: "debug", Format: "json"}, &buf)

	componentLog := log.WithComponent("download")
	componentLog.Info().Str("url", "https://youtu.be/x").Msg("started")

	out := buf.String()
	assert.Contains(t, out, `"component":"download"`)
	assert.Contains(t, out, `"message":"started"`)
	assert.NoError(t, log.Close())
}

func TestNew_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	log := newWithConsole(Config{Format: "json", Path: dir}, &buf)

	log.Warn().Msg("disk almost full")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "disk almost full")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := newWithConsole(Config{Level: "error", Format: "json"}, &buf)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
