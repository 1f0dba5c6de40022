package resolve

import (
	"io/fs"
	"os"
)

// System abstracts the filesystem reads performed during resolution.
// Tests substitute it to observe exactly which files a resolution touches.
type System interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

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
