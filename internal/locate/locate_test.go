package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/testutil"
)

type osSystem struct{}

func (osSystem) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (osSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixtures use unix executables")
	}
}

func newTestLocator(user string, system string, path string) *Locator {
	return New(osSystem{}, []Scope{
		{Name: ScopeUser, Root: user},
		{Name: ScopeSystem, Root: system},
	}, PathSearch{List: path})
}

func TestLocateUserScopeWins(t *testing.T) {
	skipOnWindows(t)
	user, system := t.TempDir(), t.TempDir()
	userDir := testutil.Install(t, user, "node", "18.2.0", "node")
	testutil.Install(t, system, "node", "18.2.0", "node")

	path, ok := newTestLocator(user, system, "").Locate(lang.Node, "18.2.0")
	require.True(t, ok)
	require.Equal(t, userDir, path)
}

func TestLocateFallsBackToSystemScope(t *testing.T) {
	skipOnWindows(t)
	user, system := t.TempDir(), t.TempDir()
	systemDir := testutil.Install(t, system, "ruby", "3.2.2", "ruby")

	path, ok := newTestLocator(user, system, "").Locate(lang.Ruby, "3.2.2")
	require.True(t, ok)
	require.Equal(t, systemDir, path)
}

func TestLocateRequiresPrimaryBinary(t *testing.T) {
	skipOnWindows(t)
	user := t.TempDir()
	testutil.Install(t, user, "python", "3.11.0", "pip3")

	_, ok := newTestLocator(user, t.TempDir(), "").Locate(lang.Python, "3.11.0")
	require.False(t, ok)
}

func TestLocateRejectsDirectoryBinary(t *testing.T) {
	skipOnWindows(t)
	user := t.TempDir()
	dir := testutil.Install(t, user, "go", "1.22.3")
	testutil.Mkdir(t, filepath.Join(dir, "bin", "go"))

	_, ok := newTestLocator(user, t.TempDir(), "").Locate(lang.Go, "1.22.3")
	require.False(t, ok)
}

func TestLocateFollowsSymlinks(t *testing.T) {
	skipOnWindows(t)
	user := t.TempDir()
	target := testutil.WriteStub(t, t.TempDir(), "php-8.2")

	dir := testutil.Install(t, user, "php", "8.2.0")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "bin", "php")))
	_, ok := newTestLocator(user, t.TempDir(), "").Locate(lang.PHP, "8.2.0")
	require.True(t, ok)

	dangling := testutil.Install(t, user, "php", "8.3.0")
	require.NoError(t, os.Symlink(filepath.Join(user, "nowhere"), filepath.Join(dangling, "bin", "php")))
	_, ok = newTestLocator(user, t.TempDir(), "").Locate(lang.PHP, "8.3.0")
	require.False(t, ok)
}

func TestValidVersion(t *testing.T) {
	for _, version := range []string{"3.11.0", "18", "nightly", "1.75.0-beta"} {
		require.True(t, ValidVersion(version), version)
	}
	for _, version := range []string{"", ".", "..", "../18", "a/b", `a\b`, "/abs"} {
		require.False(t, ValidVersion(version), version)
	}
}

func TestLocateRejectsVersionOutsideLanguageTree(t *testing.T) {
	skipOnWindows(t)
	base := t.TempDir()
	user := filepath.Join(base, "user")
	testutil.Mkdir(t, LanguageDir(user, "node"))
	testutil.WriteStub(t, filepath.Join(base, "evil", "bin"), "node")

	l := newTestLocator(user, filepath.Join(base, "system"), "")
	_, ok := l.Locate(lang.Node, "../../../evil")
	require.False(t, ok)
}

func TestLocateSystemVersionUsesPath(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	java := testutil.WriteStub(t, bin, "java")

	path, ok := newTestLocator(t.TempDir(), t.TempDir(), bin).Locate(lang.Java, lang.SystemVersion)
	require.True(t, ok)
	require.Equal(t, java, path)
}

func TestPathSearchSkipsRelativeAndNonExecutable(t *testing.T) {
	skipOnWindows(t)
	plain := t.TempDir()
	testutil.WriteFile(t, filepath.Join(plain, "rustc"), "not executable")
	good := t.TempDir()
	rustc := testutil.WriteStub(t, good, "rustc")

	list := "relative/bin" + string(os.PathListSeparator) + string(os.PathListSeparator) +
		plain + string(os.PathListSeparator) + good
	path, ok := PathSearch{List: list}.Find(osSystem{}, "rustc")
	require.True(t, ok)
	require.Equal(t, rustc, path)
}

func TestPathSearchSkipsListedExecutables(t *testing.T) {
	skipOnWindows(t)
	shimDir := t.TempDir()
	realDir := t.TempDir()
	shim := testutil.WriteStub(t, shimDir, "langshim")
	require.NoError(t, os.Symlink(shim, filepath.Join(shimDir, "node")))
	node := testutil.WriteStub(t, realDir, "node")

	search := PathSearch{
		List: shimDir + string(os.PathListSeparator) + realDir,
		Skip: []string{shim},
	}
	path, ok := search.Find(osSystem{}, "node")
	require.True(t, ok)
	require.Equal(t, node, path)
}

func TestBinaryPath(t *testing.T) {
	skipOnWindows(t)
	root := testutil.Install(t, t.TempDir(), "node", "20.1.0", "node", "npm")
	l := newTestLocator(t.TempDir(), t.TempDir(), "")

	path, ok := l.BinaryPath(root, "npm")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "bin", "npm"), path)
	_, ok = l.BinaryPath(root, "yarn")
	require.False(t, ok)
}

func TestInstalledSortsNewestFirst(t *testing.T) {
	skipOnWindows(t)
	user, system := t.TempDir(), t.TempDir()
	testutil.Install(t, user, "node", "18.2.0", "node")
	testutil.Install(t, user, "node", "20.1.0", "node")
	testutil.Install(t, user, "node", "broken", "npm")
	testutil.Install(t, system, "node", "9.11.2", "node")
	testutil.Install(t, system, "node", "18.2.0", "node")
	testutil.Install(t, system, "node", "nightly", "node")
	testutil.WriteMarker(t, user, "node", "20.1.0")

	list, err := newTestLocator(user, system, "").Installed(lang.Node)
	require.NoError(t, err)

	var got []string
	for _, inst := range list {
		got = append(got, inst.Version+"@"+inst.Scope)
	}
	require.Equal(t, []string{
		"20.1.0@user",
		"18.2.0@user",
		"18.2.0@system",
		"9.11.2@system",
		"nightly@system",
	}, got)
}

func TestInstalledMissingScopes(t *testing.T) {
	base := t.TempDir()
	l := newTestLocator(filepath.Join(base, "absent-user"), filepath.Join(base, "absent-system"), "")
	list, err := l.Installed(lang.Rust)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestPaths(t *testing.T) {
	require.Equal(t, filepath.Join("/r", "languages", "go"), LanguageDir("/r", "go"))
	require.Equal(t, filepath.Join("/r", "languages", "go", "1.22.3"), InstallDir("/r", "go", "1.22.3"))
	require.Equal(t, filepath.Join("/r", "languages", "go", "current"), MarkerPath("/r", "go"))
}

func TestResolvePathFallsBackWhenResolutionFails(t *testing.T) {
	origAbs, origEval := filepathAbs, filepathEvalSymlinks
	t.Cleanup(func() {
		filepathAbs, filepathEvalSymlinks = origAbs, origEval
	})

	filepathAbs = func(string) (string, error) { return "/abs/node", nil }
	filepathEvalSymlinks = func(string) (string, error) { return "", os.ErrNotExist }
	require.Equal(t, "/abs/node", ResolvePath("node"))

	filepathAbs = func(string) (string, error) { return "", os.ErrInvalid }
	require.Equal(t, "node", ResolvePath("node"))
	require.True(t, SamePath("node", "node"))
}
