// Package logging configures the diagnostic logger shared by the dispatcher and CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "langshim"

// New returns a logger writing to w. Debug output is emitted only when debug is set;
// otherwise only warnings and errors pass.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
