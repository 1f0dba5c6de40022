package resolve

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/logging"
	"github.com/conn-castle/langshim/internal/testutil"
)

type env struct {
	base       string
	work       string
	userRoot   string
	systemRoot string
	pathDir    string
	sys        *testSystem
}

// newEnv lays out base/repo/a/b/c/work with a .git directory at base/repo.
func newEnv(t *testing.T) *env {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixtures use unix executables")
	}
	base := t.TempDir()
	e := &env{
		base:       base,
		work:       filepath.Join(base, "repo", "a", "b", "c", "work"),
		userRoot:   filepath.Join(base, "user"),
		systemRoot: filepath.Join(base, "system"),
		pathDir:    filepath.Join(base, "pathbin"),
		sys:        &testSystem{},
	}
	testutil.Mkdir(t, e.work)
	testutil.Mkdir(t, filepath.Join(base, "repo", ".git"))
	testutil.Mkdir(t, e.pathDir)
	return e
}

func (e *env) resolver() *Resolver {
	return New(e.sys, Options{UserRoot: e.userRoot, SystemRoot: e.systemRoot})
}

func (e *env) ctx() Context {
	return Context{WorkDir: e.work, Env: map[string]string{"PATH": e.pathDir}}
}

func TestOverrideInstalled(t *testing.T) {
	e := newEnv(t)
	dir := testutil.Install(t, e.userRoot, "python", "3.11.0", "python3")
	testutil.WriteFile(t, filepath.Join(e.work, ".python-version"), "3.12.0\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Python, "3.11.0")
	require.NoError(t, err)
	require.Equal(t, ResolvedVersion{
		Version:     "3.11.0",
		Source:      CommandLineOverride,
		Path:        dir,
		Description: "Command line override: 3.11.0",
	}, got)
	require.Empty(t, e.sys.Reads(), "override must not consult any version source")
}

func TestOverrideNotInstalledIsFatal(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "python", "3.12.0", "python3")
	testutil.WriteFile(t, filepath.Join(e.work, ".python-version"), "3.12.0\n")
	testutil.WriteStub(t, e.pathDir, "python3")

	_, err := e.resolver().Resolve(e.ctx(), lang.Python, "3.9.0")
	require.ErrorIs(t, err, ErrPinnedNotFound)
	require.Equal(t, "specified version 3.9.0 not found for python", err.Error())
	require.Empty(t, e.sys.Reads())
}

func TestOverrideOutsideInstallTreeIsFatal(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "node", "18.2.0", "node")
	testutil.WriteStub(t, filepath.Join(e.work, "evil", "bin"), "node")

	_, err := e.resolver().Resolve(e.ctx(), lang.Node, "../../../repo/a/b/c/work/evil")
	require.ErrorIs(t, err, ErrPinnedNotFound)
}

func TestVersionFileOutsideInstallTreeFallsThrough(t *testing.T) {
	e := newEnv(t)
	dir := testutil.Install(t, e.userRoot, "node", "18.2.0", "node")
	testutil.WriteMarker(t, e.userRoot, "node", "18.2.0")
	testutil.WriteStub(t, filepath.Join(e.work, "evil", "bin"), "node")
	testutil.WriteFile(t, filepath.Join(e.work, ".nvmrc"), "../../../repo/a/b/c/work/evil\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Node, "")
	require.NoError(t, err)
	require.Equal(t, UserDefault, got.Source)
	require.Equal(t, dir, got.Path)
}

func TestCurrentDirectoryBeatsUserDefault(t *testing.T) {
	e := newEnv(t)
	dir := testutil.Install(t, e.userRoot, "python", "3.12.0", "python3")
	testutil.Install(t, e.userRoot, "python", "3.10.0", "python3")
	testutil.WriteMarker(t, e.userRoot, "python", "3.10.0")
	testutil.WriteFile(t, filepath.Join(e.work, ".python-version"), "3.12.0\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Python, "")
	require.NoError(t, err)
	require.Equal(t, "3.12.0", got.Version)
	require.Equal(t, CurrentDirectoryFile, got.Source)
	require.Equal(t, dir, got.Path)
	require.Equal(t, "Current directory version file: 3.12.0", got.Description)
}

func TestUninstalledSourceFallsThrough(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "python", "3.10.0", "python3")
	testutil.WriteMarker(t, e.userRoot, "python", "3.10.0")
	testutil.WriteFile(t, filepath.Join(e.work, ".python-version"), "3.99.0\n")

	var buf bytes.Buffer
	r := New(e.sys, Options{UserRoot: e.userRoot, SystemRoot: e.systemRoot, Logger: logging.New(&buf, true)})
	got, err := r.Resolve(e.ctx(), lang.Python, "")
	require.NoError(t, err)
	require.Equal(t, "3.10.0", got.Version)
	require.Equal(t, UserDefault, got.Source)
	require.Contains(t, buf.String(), "3.99.0")
}

func TestParentDirectoryLevels(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "node", "18.2.0", "node")
	testutil.WriteFile(t, filepath.Join(e.base, "repo", "a", ".nvmrc"), "18.2.0\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Node, "")
	require.NoError(t, err)
	require.Equal(t, ParentDirectoryFile, got.Source)
	require.Equal(t, "Parent directory (level 3): 18.2.0", got.Description)
}

func TestParentSearchStopsAtVCSRoot(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "node", "18.2.0", "node")
	testutil.Install(t, e.userRoot, "node", "20.1.0", "node")
	testutil.WriteMarker(t, e.userRoot, "node", "20.1.0")
	// Above the repository root: must never be seen.
	testutil.WriteFile(t, filepath.Join(e.base, ".nvmrc"), "18.2.0\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Node, "")
	require.NoError(t, err)
	require.Equal(t, "20.1.0", got.Version)
	require.Equal(t, UserDefault, got.Source)
	for _, read := range e.sys.Reads() {
		require.NotEqual(t, filepath.Join(e.base, ".nvmrc"), read)
	}
}

func TestVCSRootVersionFileIsUsed(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "ruby", "3.2.2", "ruby")
	testutil.WriteFile(t, filepath.Join(e.base, "repo", ".ruby-version"), "3.2.2\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Ruby, "")
	require.NoError(t, err)
	require.Equal(t, ParentDirectoryFile, got.Source)
	require.Contains(t, got.Description, "level 4")
}

func TestParentSearchIsBoundedToFiveLevels(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fixtures use unix executables")
	}
	base := t.TempDir()
	work := filepath.Join(base, "l6", "l5", "l4", "l3", "l2", "l1", "work")
	testutil.Mkdir(t, work)
	userRoot := filepath.Join(base, "user")
	testutil.Install(t, userRoot, "go", "1.22.3", "go")
	testutil.WriteFile(t, filepath.Join(base, "l6", ".go-version"), "1.22.3\n")
	testutil.WriteFile(t, filepath.Join(base, "l6", "l5", "l4", "l3", "l2", ".go-version"), "1.22.3\n")

	r := New(&testSystem{}, Options{UserRoot: userRoot})
	got, err := r.Resolve(Context{WorkDir: work}, lang.Go, "")
	require.NoError(t, err)
	require.Equal(t, "Parent directory (level 2): 1.22.3", got.Description)

	testutil.WriteFile(t, filepath.Join(base, "l6", "l5", "l4", "l3", "l2", ".go-version"), "\n")
	_, err = r.Resolve(Context{WorkDir: work}, lang.Go, "")
	require.ErrorIs(t, err, ErrUnresolved, "level 6 is beyond the search bound")
}

func TestManifestVersionHint(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "node", "18.2", "node")
	testutil.WriteFile(t, filepath.Join(e.work, "package.json"), `{"engines":{"node":">=18.2.0"}}`)

	got, err := e.resolver().Resolve(e.ctx(), lang.Node, "")
	require.NoError(t, err)
	require.Equal(t, "18.2", got.Version)
	require.Equal(t, ProjectManifest, got.Source)
	require.Equal(t, "Project manifest: 18.2", got.Description)
}

func TestSystemDefaultMarker(t *testing.T) {
	e := newEnv(t)
	dir := testutil.Install(t, e.systemRoot, "java", "21.0.2", "java")
	testutil.WriteMarker(t, e.systemRoot, "java", "21.0.2")

	got, err := e.resolver().Resolve(e.ctx(), lang.Java, "")
	require.NoError(t, err)
	require.Equal(t, SystemDefault, got.Source)
	require.Equal(t, dir, got.Path)
	require.Equal(t, "System default: 21.0.2", got.Description)
}

func TestSystemFallback(t *testing.T) {
	e := newEnv(t)
	python := testutil.WriteStub(t, e.pathDir, "python3")

	got, err := e.resolver().Resolve(e.ctx(), lang.Python, "")
	require.NoError(t, err)
	require.Equal(t, ResolvedVersion{
		Version:     lang.SystemVersion,
		Source:      SystemInstalled,
		Path:        python,
		Description: "System installed version",
	}, got)
}

func TestSystemVersionFileUsesPath(t *testing.T) {
	e := newEnv(t)
	php := testutil.WriteStub(t, e.pathDir, "php")
	testutil.WriteFile(t, filepath.Join(e.work, ".php-version"), "system\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.PHP, "")
	require.NoError(t, err)
	require.Equal(t, lang.SystemVersion, got.Version)
	require.Equal(t, CurrentDirectoryFile, got.Source)
	require.Equal(t, php, got.Path)
}

func TestUnresolvedMessages(t *testing.T) {
	e := newEnv(t)

	_, err := e.resolver().Resolve(e.ctx(), lang.Rust, "")
	require.ErrorIs(t, err, ErrUnresolved)
	require.Equal(t, "rust not found and running in non-interactive mode", err.Error())

	ctx := e.ctx()
	ctx.Interactive = true
	_, err = e.resolver().Resolve(ctx, lang.Rust, "")
	require.ErrorIs(t, err, ErrUnresolved)
	require.Equal(t, "rust not found. Run 'langshim install rust <version>' to install a version", err.Error())
}

func TestEmptyVersionFileIsAbsent(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "node", "20.1.0", "node")
	testutil.WriteFile(t, filepath.Join(e.work, ".nvmrc"), "   \n")
	testutil.WriteFile(t, filepath.Join(e.work, ".node-version"), "20.1.0\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Node, "")
	require.NoError(t, err)
	require.Equal(t, "20.1.0", got.Version)
	require.Equal(t, CurrentDirectoryFile, got.Source)
}

func TestStructuredVersionFiles(t *testing.T) {
	e := newEnv(t)
	testutil.Install(t, e.userRoot, "rust", "1.78.0", "rustc")
	testutil.WriteFile(t, filepath.Join(e.work, "rust-toolchain.toml"), "[toolchain]\nchannel = \"1.78.0\"\n")

	got, err := e.resolver().Resolve(e.ctx(), lang.Rust, "")
	require.NoError(t, err)
	require.Equal(t, "1.78.0", got.Version)

	testutil.WriteFile(t, filepath.Join(e.work, "rust-toolchain.toml"), "[toolchain\n")
	_, err = e.resolver().Resolve(e.ctx(), lang.Rust, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rust-toolchain.toml")
}

func TestReadErrorsAreFatal(t *testing.T) {
	e := newEnv(t)
	e.sys.ReadFileFunc = func(name string) ([]byte, error) {
		if strings.HasSuffix(name, ".python-version") {
			return nil, fs.ErrPermission
		}
		return e.sys.RealSystem.ReadFile(name)
	}
	testutil.WriteStub(t, e.pathDir, "python3")

	_, err := e.resolver().Resolve(e.ctx(), lang.Python, "")
	require.True(t, errors.Is(err, fs.ErrPermission), "got %v", err)
}

func TestResolveRequiresInputs(t *testing.T) {
	r := New(&testSystem{}, Options{})
	_, err := r.Resolve(Context{WorkDir: "/tmp"}, nil, "")
	require.Error(t, err)
	_, err = r.Resolve(Context{}, lang.Node, "")
	require.Error(t, err)
}

func TestReadMarker(t *testing.T) {
	root := t.TempDir()
	got, err := ReadMarker(RealSystem{}, root, "go")
	require.NoError(t, err)
	require.Empty(t, got)

	testutil.WriteMarker(t, root, "go", "1.22.3")
	got, err = ReadMarker(RealSystem{}, root, "go")
	require.NoError(t, err)
	require.Equal(t, "1.22.3", got)
}

func TestSourceString(t *testing.T) {
	require.Equal(t, "command-line-override", CommandLineOverride.String())
	require.Equal(t, "system-installed", SystemInstalled.String())
	require.Equal(t, "unknown", Source(42).String())
}

func TestEnvMapAndGetenv(t *testing.T) {
	m := EnvMap([]string{"PATH=/bin", "EMPTY=", "=bad", "NOEQUALS", "A=b=c", "PATH=/usr/bin"})
	require.Equal(t, map[string]string{"PATH": "/usr/bin", "EMPTY": "", "A": "b=c"}, m)
	ctx := Context{Env: m}
	require.Equal(t, "b=c", ctx.Getenv("A"))
	require.Equal(t, "", ctx.Getenv("MISSING"))
}
