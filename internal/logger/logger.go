// Package logger provides the shared structured logger for orient. It wraps
// zerolog behind a small package-level API so adapters and services log the
// same way, and the CLI --verbose flag switches the level globally.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// SetVerbose enables or disables debug-level logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	if v {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}
}

// IsVerbose returns true if debug-level logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return log.GetLevel() <= zerolog.DebugLevel
}

// SetOutput sets the output writer. Defaults to a console writer on stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

// L returns the underlying zerolog logger for structured event logging.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	l := L()
	l.Debug().Msgf(format, args...)
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	l := L()
	l.Info().Msgf(format, args...)
}

// Warn logs a formatted warning message.
func Warn(format string, args ...any) {
	l := L()
	l.Warn().Msgf(format, args...)
}

// Error logs a formatted error message.
func Error(format string, args ...any) {
	l := L()
	l.Error().Msgf(format, args...)
}
