package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultFilePath is the JSON log file, relative to the working directory (project root when run via go run ./cmd/simulacra).
const DefaultFilePath = "logs/simulacra.log"

// consoleTimeFormat matches the [timestamp] prefix of the terminal log.
const consoleTimeFormat = "2006-01-02 15:04:05"

// Config captures options for the process-wide logger.
type Config struct {
	Level   string    // "debug", "info", ...; falls back to LOG_LEVEL, then info
	Output  io.Writer // console writer; defaults to a human-readable writer on stderr
	File    string    // optional JSON log file; empty disables file output
	Service string    // attached to every entry; defaults to "simulacra"
}

var (
	once       sync.Once
	configured atomic.Bool
	base       = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}).
			With().Timestamp().Logger()
)

// Configure sets up the global logger. Only the first call has an effect; the logger is
// never torn down or reconfigured for the rest of the process.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if cfg.Level != "" {
			if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
				level = parsed
			}
		} else if env := os.Getenv("LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)

		base = newLogger(cfg)
		configured.Store(true)
	})
}

// newLogger builds the logger Configure installs. A log file that cannot be opened is
// reported on the console and skipped.
func newLogger(cfg Config) zerolog.Logger {
	console := cfg.Output
	if console == nil {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
	}
	writer := console
	var fileErr error
	if cfg.File != "" {
		var f *os.File
		if f, fileErr = openLogFile(cfg.File); fileErr == nil {
			writer = zerolog.MultiLevelWriter(console, f)
		}
	}

	service := cfg.Service
	if service == "" {
		service = "simulacra"
	}

	l := zerolog.New(writer).With().
		Timestamp().
		Str("service", service).
		Logger()
	if fileErr != nil {
		l.Warn().Err(fileErr).Str("file", cfg.File).Msg("log file unavailable, logging to console only")
	}
	return l
}

// openLogFile opens path for appending, creating its directory if needed.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// Configured reports whether Configure has run.
func Configured() bool {
	return configured.Load()
}

// Base returns the global logger. Before Configure it writes to stderr at info level.
func Base() zerolog.Logger {
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
