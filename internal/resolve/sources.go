package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/locate"
	"github.com/conn-castle/langshim/internal/messages"
)

// maxParentLevels bounds the upward version-file search.
const maxParentLevels = 5

// vcsMarkers are the entries that make a directory a repository root.
var vcsMarkers = []string{".git", ".hg", ".svn", ".bzr"}

func (r *Resolver) currentDirectory(ctx Context, d *lang.Descriptor) (proposal, bool, error) {
	version, err := r.readVersionFile(d, ctx.WorkDir)
	if err != nil || version == "" {
		return proposal{}, false, err
	}
	return proposal{
		version:     version,
		source:      CurrentDirectoryFile,
		description: fmt.Sprintf(messages.ResolveDescCurrentDirFmt, version),
	}, true, nil
}

// parentDirectories walks up from the working directory's parent. A repository root ends
// the walk after its own version file is checked, whether or not it holds one.
func (r *Resolver) parentDirectories(ctx Context, d *lang.Descriptor) (proposal, bool, error) {
	dir := ctx.WorkDir
	for level := 1; level <= maxParentLevels; level++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent

		vcsRoot := r.isVCSRoot(dir)
		version, err := r.readVersionFile(d, dir)
		if err != nil {
			return proposal{}, false, err
		}
		if version != "" {
			return proposal{
				version:     version,
				source:      ParentDirectoryFile,
				description: fmt.Sprintf(messages.ResolveDescParentDirFmt, level, version),
			}, true, nil
		}
		if vcsRoot {
			r.logger.Debug(messages.DebugVCSBoundary, "dir", dir, "level", level)
			break
		}
	}
	return proposal{}, false, nil
}

func (r *Resolver) projectManifest(ctx Context, d *lang.Descriptor) (proposal, bool, error) {
	if d.Manifest == nil {
		return proposal{}, false, nil
	}
	version, err := d.Manifest(r.sys, ctx.WorkDir)
	if err != nil || version == "" {
		return proposal{}, false, err
	}
	return proposal{
		version:     version,
		source:      ProjectManifest,
		description: fmt.Sprintf(messages.ResolveDescManifestFmt, version),
	}, true, nil
}

func (r *Resolver) userDefault(_ Context, d *lang.Descriptor) (proposal, bool, error) {
	return r.defaultMarker(r.opts.UserRoot, d, UserDefault, messages.ResolveDescUserDefaultFmt)
}

func (r *Resolver) systemDefault(_ Context, d *lang.Descriptor) (proposal, bool, error) {
	return r.defaultMarker(r.opts.SystemRoot, d, SystemDefault, messages.ResolveDescSystemDefaultFmt)
}

func (r *Resolver) defaultMarker(root string, d *lang.Descriptor, source Source, descFmt string) (proposal, bool, error) {
	if root == "" {
		return proposal{}, false, nil
	}
	version, err := ReadMarker(r.sys, root, d.Name)
	if err != nil || version == "" {
		return proposal{}, false, err
	}
	return proposal{
		version:     version,
		source:      source,
		description: fmt.Sprintf(descFmt, version),
	}, true, nil
}

// readVersionFile returns the version named by the first of d's version files present in dir.
func (r *Resolver) readVersionFile(d *lang.Descriptor, dir string) (string, error) {
	for _, file := range d.VersionFiles {
		path := filepath.Join(dir, file.Name)
		data, err := r.sys.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf(messages.VersionFileReadFailedFmt, path, err)
		}
		version, err := file.Read(data)
		if err != nil {
			return "", fmt.Errorf(messages.VersionFileInvalidFmt, path, err)
		}
		if version != "" {
			return version, nil
		}
	}
	return "", nil
}

func (r *Resolver) isVCSRoot(dir string) bool {
	for _, marker := range vcsMarkers {
		if _, err := r.sys.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// ReadMarker reads the default version recorded for language under a scope root.
// A missing or empty marker yields "".
func ReadMarker(sys System, root string, language string) (string, error) {
	path := locate.MarkerPath(root, language)
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf(messages.MarkerReadFailedFmt, path, err)
	}
	return lang.ParsePlain(data), nil
}
