// Package logging wires zerolog loggers and carries them through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config/env level name to a zerolog level.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// IsValidLevel reports whether level is a name ParseLevel understands.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	default:
		return false
	}
}

// NewFromEnv creates a logger based on environment variables
// DUMBCAM_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBCAM_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("DUMBCAM_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("DUMBCAM_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// SetGlobalLevel applies level process-wide and returns the parsed value.
// Loggers built with a lower own level follow the global filter, which lets
// a config reload change verbosity without rebuilding loggers.
func SetGlobalLevel(level string) zerolog.Level {
	lvl := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)
	return lvl
}
