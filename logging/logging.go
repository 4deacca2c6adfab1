// Package logging holds the process logger. Benchmark results are not logs
// and are written to stdout by the caller.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the process logger writing to w. debug lowers the level to
// Debug and human selects the console format instead of JSON.
func Init(w io.Writer, debug, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if human {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
		}
	}

	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func L() *zerolog.Logger { return &logger }

// WithPhase returns the logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return logger.With().Str("phase", phase).Logger()
}

// SetLogger replaces the process logger.
func SetLogger(l zerolog.Logger) { logger = l }
