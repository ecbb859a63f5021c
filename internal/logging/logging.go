// Package logging builds the zerolog loggers shared by the game packages.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to w at the given level.
// Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Console is New with human readable output, for running from a terminal.
func Console(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}, level)
}

// Component tags a child logger with the subsystem name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// WithRun tags a child logger with the session id.
func WithRun(l zerolog.Logger, runID string) zerolog.Logger {
	return l.With().Str("run_id", runID).Logger()
}
