// Package lang holds the static descriptors for every supported language toolchain.
//
// A descriptor carries everything the resolver, locator, and environment composer need to
// know about a language: which version files to look for, which binary proves an installation
// is present, which invoked command names belong to it, how to read a version hint out of a
// project manifest, and which variables isolate an installation. Adding a language means
// adding a descriptor to All; no resolver code branches on the language name.
package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// SystemVersion is the version string reported for toolchains found on PATH.
const SystemVersion = "system"

// VersionFile names a per-project version file and how to read a version token from it.
type VersionFile struct {
	// Name is the file name looked up in a directory.
	Name string
	// Parse extracts a version from the file content. It returns "" when the file holds no
	// usable version and an error when the content is malformed.
	Parse func(data []byte) (string, error)
}

// Plain reports whether the file is a bare version token file.
func (f VersionFile) Plain() bool {
	return f.Parse == nil
}

// Read returns the version held by data according to the file's format.
func (f VersionFile) Read(data []byte) (string, error) {
	if f.Parse == nil {
		return ParsePlain(data), nil
	}
	return f.Parse(data)
}

// EnvInput is everything an environment builder may derive variables from.
type EnvInput struct {
	// Root is the installation root (<scope>/languages/<lang>/<version>).
	Root string
	// Version is the resolved version string.
	Version string
	// Home is the invoking user's home directory.
	Home string
}

// Descriptor describes one supported language.
type Descriptor struct {
	Name        string
	DisplayName string
	// VersionFiles are checked in order; the first one holding a version wins.
	VersionFiles []VersionFile
	// PrimaryBinary is the executable whose presence under bin/ proves an installation.
	PrimaryBinary string
	// Commands maps invoked program names to the binary executed under bin/.
	Commands map[string]string
	// Manifest proposes a version from project manifests in dir. Nil when the language has
	// no manifest heuristic.
	Manifest ManifestFunc
	// Env builds the isolation overlay for a managed installation.
	Env func(in EnvInput) map[string]string
}

// Binary returns the binary executed for an invoked command, falling back to the command
// name itself for commands the descriptor does not list.
func (d *Descriptor) Binary(command string) string {
	if bin, ok := d.Commands[command]; ok {
		return bin
	}
	return command
}

// CommandNames returns the invoked command names owned by the language in sorted order.
func (d *Descriptor) CommandNames() []string {
	names := make([]string, 0, len(d.Commands))
	for name := range d.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LocalFile returns the first plain version file name, used when pinning a directory.
func (d *Descriptor) LocalFile() (string, bool) {
	for _, f := range d.VersionFiles {
		if f.Plain() {
			return f.Name, true
		}
	}
	return "", false
}

// All is the canonical list of supported languages.
var All = []*Descriptor{
	Python,
	Node,
	Ruby,
	Rust,
	Go,
	PHP,
	Java,
	Dotnet,
}

// Find returns the descriptor with the given name, or nil if unsupported.
func Find(name string) *Descriptor {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range All {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// ForCommand maps an invoked program (argv[0]) to its language and the binary to run.
// The directory part and a Windows .exe suffix are ignored.
func ForCommand(program string) (*Descriptor, string, bool) {
	name := CommandName(program)
	for _, d := range All {
		if bin, ok := d.Commands[name]; ok {
			return d, bin, true
		}
	}
	return nil, "", false
}

// CommandName normalizes argv[0] to the bare command name.
func CommandName(program string) string {
	name := filepath.Base(program)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// ParsePlain reads a bare version token file: the trimmed content, "" when empty.
func ParsePlain(data []byte) string {
	return strings.TrimSpace(string(data))
}
