package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Configure is once-per-process, so the whole lifecycle is checked in one test.
func TestConfigure_OnceOnly(t *testing.T) {
	require.False(t, Configured())

	var first, second bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "engine.log")

	Configure(Config{Level: "debug", Output: &first, File: logFile, Service: "test"})
	require.True(t, Configured())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Configure(Config{Level: "error", Output: &second})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel(), "second Configure must be ignored")

	l := WithComponent("app")
	l.Info().Msg("App Starting")

	assert.Zero(t, second.Len())
	line := strings.TrimSpace(first.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "App Starting", entry["message"])
	assert.Equal(t, "app", entry["component"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "info", entry["level"])

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"App Starting"`)
}

func TestNewLogger_UnusableFileWarns(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var out bytes.Buffer
	l := newLogger(Config{Output: &out, File: filepath.Join(blocker, "engine.log")})
	l.Info().Msg("still logging")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	var warn map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	assert.Equal(t, "warn", warn["level"])
	assert.Equal(t, "log file unavailable, logging to console only", warn["message"])
	assert.Contains(t, warn["file"], "engine.log")
	assert.NotEmpty(t, warn["error"])
	assert.Contains(t, lines[1], "still logging")
}
