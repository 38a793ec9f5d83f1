package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simulacra/internal/window"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: T\nwidth: 800\nheight: 600\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "T", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, BackendNative, cfg.Backend)
	assert.Equal(t, 60, cfg.TargetFPS)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1, 2\n"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "engine.yaml")
	want := Default()
	want.Title = "Round"
	want.Backend = BackendHeadless
	want.RecoverLayerPanics = true

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIMULACRA_TITLE", "FromEnv")
	t.Setenv("SIMULACRA_WIDTH", "320")
	t.Setenv("SIMULACRA_HEIGHT", "not-a-number")
	t.Setenv("SIMULACRA_BACKEND", BackendHeadless)
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "FromEnv", cfg.Title)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 728, cfg.Height)
	assert.Equal(t, BackendHeadless, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty title", func(c *Config) { c.Title = "" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"unknown backend", func(c *Config) { c.Backend = "vulkan" }},
		{"negative fps", func(c *Config) { c.TargetFPS = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestProps(t *testing.T) {
	cfg := Default()
	assert.Equal(t, window.Props{Title: "Simulacra", Width: 1024, Height: 728, TargetFPS: 60}, cfg.Props())
}
