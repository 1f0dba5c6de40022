// Package resolve decides which installed toolchain version handles an invocation.
//
// Sources are consulted strictly in precedence order (see Source). An explicit override is
// fatal when not installed; every other source that names an uninstalled version is skipped
// and resolution moves on to the next one.
package resolve

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/logging"
	"github.com/conn-castle/langshim/internal/locate"
	"github.com/conn-castle/langshim/internal/messages"
)

// Options configures a Resolver.
type Options struct {
	// UserRoot is the user-scope managed installation tree.
	UserRoot string
	// SystemRoot is the system-scope managed installation tree.
	SystemRoot string
	// Skip lists executables the PATH fallback must ignore.
	Skip []string
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Resolver runs the ranked resolution chain.
type Resolver struct {
	sys    System
	opts   Options
	logger *log.Logger
}

// proposal is a version named by one source, not yet checked for installation.
type proposal struct {
	version     string
	source      Source
	description string
}

type step func(ctx Context, d *lang.Descriptor) (proposal, bool, error)

// New returns a Resolver reading through sys.
func New(sys System, opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{sys: sys, opts: opts, logger: logger}
}

// Locator returns the installation locator for an invocation context.
func (r *Resolver) Locator(ctx Context) *locate.Locator {
	var scopes []locate.Scope
	if r.opts.UserRoot != "" {
		scopes = append(scopes, locate.Scope{Name: locate.ScopeUser, Root: r.opts.UserRoot})
	}
	if r.opts.SystemRoot != "" {
		scopes = append(scopes, locate.Scope{Name: locate.ScopeSystem, Root: r.opts.SystemRoot})
	}
	return locate.New(r.sys, scopes, locate.PathSearch{
		List:    ctx.Getenv("PATH"),
		PathExt: ctx.Getenv("PATHEXT"),
		Skip:    r.opts.Skip,
	})
}

// Resolve returns the version of d that handles the invocation described by ctx.
// A non-empty override is the pinned version; it fails with ErrPinnedNotFound when not
// installed without consulting any other source.
func (r *Resolver) Resolve(ctx Context, d *lang.Descriptor, override string) (ResolvedVersion, error) {
	if d == nil {
		return ResolvedVersion{}, errors.New(messages.ResolveLanguageRequired)
	}
	if ctx.WorkDir == "" {
		return ResolvedVersion{}, errors.New(messages.ResolveWorkingDirRequired)
	}
	ctx.WorkDir = filepath.Clean(ctx.WorkDir)
	locator := r.Locator(ctx)

	if override != "" {
		path, ok := locator.Locate(d, override)
		if !ok {
			return ResolvedVersion{}, &resolveError{
				kind: ErrPinnedNotFound,
				msg:  fmt.Sprintf(messages.ResolvePinnedNotFoundFmt, override, d.Name),
			}
		}
		return ResolvedVersion{
			Version:     override,
			Source:      CommandLineOverride,
			Path:        path,
			Description: fmt.Sprintf(messages.ResolveDescOverrideFmt, override),
		}, nil
	}

	steps := []step{
		r.currentDirectory,
		r.parentDirectories,
		r.projectManifest,
		r.userDefault,
		r.systemDefault,
	}
	for _, next := range steps {
		p, ok, err := next(ctx, d)
		if err != nil {
			return ResolvedVersion{}, err
		}
		if !ok {
			continue
		}
		path, installed := locator.Locate(d, p.version)
		if !installed {
			r.logger.Debug(messages.DebugSkipUninstalled, "language", d.Name, "version", p.version, "source", p.source)
			continue
		}
		return ResolvedVersion{
			Version:     p.version,
			Source:      p.source,
			Path:        path,
			Description: p.description,
		}, nil
	}

	if path, ok := locator.Locate(d, lang.SystemVersion); ok {
		return ResolvedVersion{
			Version:     lang.SystemVersion,
			Source:      SystemInstalled,
			Path:        path,
			Description: messages.ResolveDescSystemInstalled,
		}, nil
	}

	msg := fmt.Sprintf(messages.ResolveUnresolvedFmt, d.Name)
	if ctx.Interactive {
		msg = fmt.Sprintf(messages.ResolveUnresolvedTerminalFmt, d.Name, d.Name)
	}
	return ResolvedVersion{}, &resolveError{kind: ErrUnresolved, msg: msg}
}
