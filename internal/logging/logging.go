// Package logging builds the CLI's diagnostic logger. Output goes to the
// writer it is given (stderr in practice), never to stdout.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Debug lowers the level from
// warn to debug.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
