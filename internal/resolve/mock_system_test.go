package resolve

import (
	"io/fs"
	"sync"
)

// testSystem wraps RealSystem and records every path read or statted, so tests can assert
// which sources a resolution consulted. ReadFileFunc overrides reads when set.
type testSystem struct {
	RealSystem

	ReadFileFunc func(name string) ([]byte, error)

	mu    sync.Mutex
	reads []string
	stats []string
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	s.mu.Lock()
	s.reads = append(s.reads, name)
	s.mu.Unlock()
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func (s *testSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	s.mu.Lock()
	s.reads = append(s.reads, name)
	s.mu.Unlock()
	return s.RealSystem.ReadDir(name)
}

func (s *testSystem) Stat(name string) (fs.FileInfo, error) {
	s.mu.Lock()
	s.stats = append(s.stats, name)
	s.mu.Unlock()
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Reads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reads...)
}
