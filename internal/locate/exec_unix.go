//go:build !windows

package locate

import "io/fs"

// executableNames returns the file names an executable called name may have on disk.
func executableNames(name string, _ string) []string {
	return []string{name}
}

func isExecutable(mode fs.FileMode) bool {
	return mode&0o111 != 0
}
