package resolve

import (
	"runtime"
	"strings"
)

// Context is the per-invocation process state resolution depends on. It is captured once by
// the caller so resolution never reads the live working directory or environment.
type Context struct {
	// WorkDir is the directory the invocation runs in.
	WorkDir string
	// Env is a snapshot of the process environment.
	Env map[string]string
	// Home is the invoking user's home directory.
	Home string
	// Interactive reports whether the invocation is attached to a terminal.
	Interactive bool
}

// EnvMap converts a KEY=VALUE environment list into a map. Later entries win.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Getenv returns the snapshot value for key. Keys match case-insensitively on Windows.
func (c Context) Getenv(key string) string {
	if value, ok := c.Env[key]; ok {
		return value
	}
	if runtime.GOOS == "windows" {
		for k, v := range c.Env {
			if strings.EqualFold(k, key) {
				return v
			}
		}
	}
	return ""
}
