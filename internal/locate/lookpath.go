package locate

import (
	"path/filepath"
)

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// PathSearch is a PATH lookup over an environment snapshot rather than the live process env.
type PathSearch struct {
	// List is the PATH value.
	List string
	// PathExt is the PATHEXT value; only consulted on Windows.
	PathExt string
	// Skip lists executables that must never be returned, such as the dispatcher itself,
	// so a shim link on PATH does not resolve back to the shim.
	Skip []string
}

// Find returns the first absolute PATH entry holding an executable named file.
// Relative and empty PATH entries are ignored.
func (p PathSearch) Find(sys System, file string) (string, bool) {
	for _, dir := range filepath.SplitList(p.List) {
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}
		for _, name := range executableNames(file, p.PathExt) {
			candidate := filepath.Join(dir, name)
			info, err := sys.Stat(candidate)
			if err != nil || !info.Mode().IsRegular() || !isExecutable(info.Mode()) {
				continue
			}
			if p.skipped(candidate) {
				continue
			}
			return candidate, true
		}
	}
	return "", false
}

func (p PathSearch) skipped(candidate string) bool {
	for _, skip := range p.Skip {
		if skip != "" && SamePath(candidate, skip) {
			return true
		}
	}
	return false
}

// SamePath returns true if two paths resolve to the same filesystem location,
// accounting for symlinks and relative paths.
func SamePath(a, b string) bool {
	return ResolvePath(a) == ResolvePath(b)
}

// ResolvePath returns the absolute, symlink-resolved form of a path.
// If resolution fails at any step, it returns the best result available.
func ResolvePath(path string) string {
	abs, err := filepathAbs(path)
	if err != nil {
		abs = path
	}
	eval, err := filepathEvalSymlinks(abs)
	if err == nil {
		return eval
	}
	return abs
}
