// Package launch hands control to the resolved toolchain executable.
//
// There are two launchers. Where the OS can replace the running process image the
// dispatcher becomes the target program and never returns; elsewhere the target runs as a
// child and the dispatcher exits with the child's status. Default picks one per build target.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/conn-castle/langshim/internal/messages"
)

// ErrExecFailure reports that a verified executable could not be started.
var ErrExecFailure = errors.New("exec failed")

// Launcher starts path with args (excluding argv[0]) and the complete environment env.
// On success it does not return control to the caller in any meaningful way: either the
// process image is gone or the exit handler has been called.
type Launcher interface {
	Launch(path string, args []string, env []string) error
}

// Stdio are the streams a spawned child inherits.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func execFailure(path string, err error) error {
	return fmt.Errorf("%w: "+messages.LaunchExecFailedFmt, ErrExecFailure, path, err)
}

// spawnLauncher runs the target as a child, waits, and exits with its status.
type spawnLauncher struct {
	stdio Stdio
	exit  func(int)
}

// NewSpawn returns the launcher used where process image replacement is unavailable.
func NewSpawn(stdio Stdio, exit func(int)) Launcher {
	return spawnLauncher{stdio: stdio, exit: exit}
}

func (s spawnLauncher) Launch(path string, args []string, env []string) error {
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = s.stdio.Stdin
	cmd.Stdout = s.stdio.Stdout
	cmd.Stderr = s.stdio.Stderr
	err := cmd.Run()
	if err == nil {
		s.exit(0)
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal.
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		s.exit(code)
		return nil
	}
	return execFailure(path, err)
}
