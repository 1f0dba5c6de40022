//go:build windows

package launch

// Default returns the launcher for this platform.
func Default(stdio Stdio, exit func(int)) Launcher {
	return NewSpawn(stdio, exit)
}
