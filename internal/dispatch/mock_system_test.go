package dispatch

import (
	"errors"
	"fmt"
	"io/fs"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Fallback behavior:
//   - Getwd, Launch: return errNotMocked (fail-fast). The working directory must come from
//     the test, and launching must never touch the real process.
//   - HomeDir, Executable: return "" with errNotMocked, which dispatch tolerates.
//   - Environ: returns nil, so PATH is empty unless the test provides one.
//   - IsInteractive: false.
//   - ReadFile, ReadDir, Stat: fall back to RealSystem so tests can lay out fixtures under
//     t.TempDir().
type testSystem struct {
	RealSystem

	GetwdFunc         func() (string, error)
	EnvironFunc       func() []string
	HomeDirFunc       func() (string, error)
	ExecutableFunc    func() (string, error)
	IsInteractiveFunc func() bool
	ReadFileFunc      func(name string) ([]byte, error)
	LaunchFunc        func(path string, args []string, env []string) error
}

func (s *testSystem) Getwd() (string, error) {
	if s.GetwdFunc != nil {
		return s.GetwdFunc()
	}
	return "", fmt.Errorf("%w: Getwd", errNotMocked)
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return nil
}

func (s *testSystem) HomeDir() (string, error) {
	if s.HomeDirFunc != nil {
		return s.HomeDirFunc()
	}
	return "", fmt.Errorf("%w: HomeDir", errNotMocked)
}

func (s *testSystem) Executable() (string, error) {
	if s.ExecutableFunc != nil {
		return s.ExecutableFunc()
	}
	return "", fmt.Errorf("%w: Executable", errNotMocked)
}

func (s *testSystem) IsInteractive() bool {
	if s.IsInteractiveFunc != nil {
		return s.IsInteractiveFunc()
	}
	return false
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func (s *testSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return s.RealSystem.ReadDir(name)
}

func (s *testSystem) Stat(name string) (fs.FileInfo, error) {
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Launch(path string, args []string, env []string) error {
	if s.LaunchFunc != nil {
		return s.LaunchFunc(path, args, env)
	}
	return fmt.Errorf("%w: Launch", errNotMocked)
}
