// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// that stdout carries only the checklist report.
package logging

import (
	"io"
	"time"

	"github.com/jwalton/go-supportscolor"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Only warnings and errors are
// shown unless verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !supportscolor.Stderr().SupportsColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
