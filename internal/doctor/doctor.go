// Package doctor inspects a langshim setup and reports problems with remedies.
package doctor

import (
	"io/fs"
)

// Status is the outcome of one check.
type Status string

// Check outcomes.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one reported finding.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// System abstracts the filesystem reads doctor checks perform.
type System interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

// Failed reports whether any result failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
