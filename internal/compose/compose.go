// Package compose builds the environment overlay that isolates a resolved toolchain.
package compose

import (
	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/resolve"
)

// Compose returns the isolation overlay for resolved. System toolchains get an empty overlay;
// managed installations get the descriptor's variables, all derived from the installation
// root (and home, for languages that keep per-user state there).
func Compose(d *lang.Descriptor, resolved resolve.ResolvedVersion, home string) map[string]string {
	overlay := map[string]string{}
	if resolved.Version == lang.SystemVersion || d == nil || d.Env == nil {
		return overlay
	}
	for key, value := range d.Env(lang.EnvInput{
		Root:    resolved.Path,
		Version: resolved.Version,
		Home:    home,
	}) {
		overlay[key] = value
	}
	return overlay
}
