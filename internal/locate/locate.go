// Package locate finds managed toolchain installations on disk.
//
// Installations live at <scope>/languages/<language>/<version>/ and count as present only when
// bin/<primary-binary> is a regular file. The installer writes the same layout; the two must
// not drift.
package locate

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conn-castle/langshim/internal/lang"
)

// Scope names used for the two installation trees.
const (
	ScopeUser   = "user"
	ScopeSystem = "system"
)

// MarkerName is the file holding a scope's default version for a language.
const MarkerName = "current"

// System abstracts the filesystem reads the locator performs.
type System interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Scope is one managed installation tree.
type Scope struct {
	Name string
	Root string
}

// Locator answers whether a language version is installed and where.
type Locator struct {
	sys    System
	scopes []Scope
	path   PathSearch
}

// New returns a Locator checking scopes in order and searching path for system toolchains.
func New(sys System, scopes []Scope, path PathSearch) *Locator {
	return &Locator{sys: sys, scopes: scopes, path: path}
}

// Scopes returns the installation trees in lookup order.
func (l *Locator) Scopes() []Scope {
	return append([]Scope(nil), l.scopes...)
}

// ValidVersion reports whether version can name an installation directory: a single path
// element that is neither "." nor "..".
func ValidVersion(version string) bool {
	if version == "" || version == "." || version == ".." {
		return false
	}
	return version == filepath.Base(version) && !strings.ContainsAny(version, `/\`)
}

// Locate returns the installation root for version, or the PATH location of the primary
// binary for lang.SystemVersion. The first scope holding a valid installation wins.
// Versions that are not a single path element never match.
func (l *Locator) Locate(d *lang.Descriptor, version string) (string, bool) {
	if version == lang.SystemVersion {
		return l.LookPath(d.PrimaryBinary)
	}
	if !ValidVersion(version) {
		return "", false
	}
	for _, scope := range l.scopes {
		dir := InstallDir(scope.Root, d.Name, version)
		if l.hasBinary(dir, d.PrimaryBinary) {
			return dir, true
		}
	}
	return "", false
}

// LookPath searches the PATH snapshot for an executable named file.
func (l *Locator) LookPath(file string) (string, bool) {
	return l.path.Find(l.sys, file)
}

// BinaryPath returns the existing executable for binary under an installation root.
func (l *Locator) BinaryPath(root string, binary string) (string, bool) {
	for _, name := range executableNames(binary, l.path.PathExt) {
		candidate := filepath.Join(root, "bin", name)
		if l.isRegular(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (l *Locator) hasBinary(root string, binary string) bool {
	_, ok := l.BinaryPath(root, binary)
	return ok
}

// isRegular reports whether path exists and, after following symlinks, is a regular file.
func (l *Locator) isRegular(path string) bool {
	info, err := l.sys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// LanguageDir returns <root>/languages/<language>.
func LanguageDir(root string, language string) string {
	return filepath.Join(root, "languages", language)
}

// InstallDir returns <root>/languages/<language>/<version>.
func InstallDir(root string, language string, version string) string {
	return filepath.Join(LanguageDir(root, language), version)
}

// MarkerPath returns the default-version marker file for language under root.
func MarkerPath(root string, language string) string {
	return filepath.Join(LanguageDir(root, language), MarkerName)
}
