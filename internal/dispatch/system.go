package dispatch

import (
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/langshim/internal/launch"
	"github.com/conn-castle/langshim/internal/terminal"
)

// System abstracts OS operations needed by toolchain dispatch.
// The interface is package-local so tests can run in parallel without shared global state;
// resolve and locate declare only the reads they perform.
type System interface {
	Getwd() (string, error)
	Environ() []string
	HomeDir() (string, error)
	Executable() (string, error)
	IsInteractive() bool
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Launch(path string, args []string, env []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct {
	// Launcher starts the target program. Nil uses launch.Default with the process stdio
	// and os.Exit.
	Launcher launch.Launcher
}

// Getwd returns the current working directory.
func (RealSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// HomeDir returns the invoking user's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}

// Executable returns the path of the running langshim binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// IsInteractive reports whether stdout is a terminal.
func (RealSystem) IsInteractive() bool {
	return terminal.IsInteractive()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory.
func (RealSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file info for name, following symlinks.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Launch hands control to path. With the default launcher it does not return on success.
func (s RealSystem) Launch(path string, args []string, env []string) error {
	launcher := s.Launcher
	if launcher == nil {
		launcher = launch.Default(launch.Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}, os.Exit)
	}
	return launcher.Launch(path, args, env)
}
