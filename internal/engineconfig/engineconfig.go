package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"simulacra/internal/window"
)

// DefaultPath is the path to the engine config file, relative to the process working directory.
const DefaultPath = "config/engine.yaml"

// Backend names accepted in Config.Backend.
const (
	BackendNative   = "native"   // the surface compiled into the binary (raylib, or GLFW with -tags glfw)
	BackendHeadless = "headless" // scripted surface without a window
)

// Config is the engine's construction-time configuration. It is read once at startup;
// nothing reconfigures a running application.
type Config struct {
	Title              string `yaml:"title"`
	Width              int    `yaml:"width"`
	Height             int    `yaml:"height"`
	Backend            string `yaml:"backend"`
	TargetFPS          int    `yaml:"target_fps"`
	LogLevel           string `yaml:"log_level,omitempty"`
	LogFile            string `yaml:"log_file,omitempty"`
	RecoverLayerPanics bool   `yaml:"recover_layer_panics"`
}

// Default returns the stock window (Simulacra, 1024x728) on the native backend.
func Default() Config {
	return Config{
		Title:     "Simulacra",
		Width:     1024,
		Height:    728,
		Backend:   BackendNative,
		TargetFPS: 60,
		LogLevel:  "info",
		LogFile:   "logs/simulacra.log",
	}
}

// Load reads the YAML config at path on top of Default(), so keys missing from the file keep
// their defaults. A missing file is not an error; a malformed one is, and Default() is returned with it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays SIMULACRA_TITLE, SIMULACRA_WIDTH, SIMULACRA_HEIGHT, SIMULACRA_BACKEND and
// LOG_LEVEL when set. Sizes that are not integers are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SIMULACRA_TITLE"); v != "" {
		c.Title = v
	}
	if n, err := strconv.Atoi(os.Getenv("SIMULACRA_WIDTH")); err == nil {
		c.Width = n
	}
	if n, err := strconv.Atoi(os.Getenv("SIMULACRA_HEIGHT")); err == nil {
		c.Height = n
	}
	if v := os.Getenv("SIMULACRA_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects configurations no surface can be built from.
func (c Config) Validate() error {
	if c.Title == "" {
		return errors.New("config: title must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	switch c.Backend {
	case BackendNative, BackendHeadless:
	default:
		return fmt.Errorf("config: unknown backend %q (use %s or %s)", c.Backend, BackendNative, BackendHeadless)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("config: target_fps must not be negative, got %d", c.TargetFPS)
	}
	return nil
}

// Props returns the window properties for the surface.
func (c Config) Props() window.Props {
	return window.Props{Title: c.Title, Width: c.Width, Height: c.Height, TargetFPS: c.TargetFPS}
}
