// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether stdout is an interactive terminal.
// This is the canonical implementation for terminal detection across the codebase.
func IsInteractive() bool {
	return IsTerminal(os.Stdout)
}
