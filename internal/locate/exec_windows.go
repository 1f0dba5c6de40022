//go:build windows

package locate

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const defaultPathExt = ".com;.exe;.bat;.cmd"

// executableNames returns the file names an executable called name may have on disk.
// A name that already carries an extension is tried as-is first.
func executableNames(name string, pathExt string) []string {
	if pathExt == "" {
		pathExt = defaultPathExt
	}
	var names []string
	if filepath.Ext(name) != "" {
		names = append(names, name)
	}
	for _, ext := range strings.Split(strings.ToLower(pathExt), ";") {
		if ext = strings.TrimSpace(ext); ext != "" {
			names = append(names, name+ext)
		}
	}
	return names
}

func isExecutable(fs.FileMode) bool {
	return true
}
