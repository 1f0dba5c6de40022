//go:build !windows

package launch

import "golang.org/x/sys/unix"

var unixExec = unix.Exec

// replaceLauncher replaces the current process image with the target.
type replaceLauncher struct{}

// NewReplace returns the launcher that execs the target in place of the current process.
func NewReplace() Launcher {
	return replaceLauncher{}
}

// Launch only returns when the exec call fails. argv[0] is the executable path.
func (replaceLauncher) Launch(path string, args []string, env []string) error {
	argv := append([]string{path}, args...)
	if err := unixExec(path, argv, env); err != nil {
		return execFailure(path, err)
	}
	return nil
}

// Default returns the launcher for this platform.
func Default(Stdio, func(int)) Launcher {
	return NewReplace()
}
