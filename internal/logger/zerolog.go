// Package logger builds the zerolog loggers used by the bcsd demos and any
// caller that wants the library's diagnostics in a ready-made format.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewZerolog returns a JSON logger writing to w at the given level, with a
// timestamp and a component field on every event.
func NewZerolog(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", "bcsd").
		Logger()
}

// NewConsoleLogger returns a human-readable logger on stderr.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// ParseLevel maps a level name ("debug", "info", ...) to a zerolog.Level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}

	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}
