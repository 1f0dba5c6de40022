// Package dispatch runs a toolchain command through the version that should handle it.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/langshim/internal/compose"
	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/logging"
	"github.com/conn-castle/langshim/internal/launch"
	"github.com/conn-castle/langshim/internal/messages"
	"github.com/conn-castle/langshim/internal/resolve"
)

// ErrUnknownCommand reports an argv[0] that no language owns.
var ErrUnknownCommand = errors.New("unknown command")

// Options configures dispatch.
type Options struct {
	// UserRoot is the user-scope managed installation tree.
	UserRoot string
	// SystemRoot is the system-scope managed installation tree.
	SystemRoot string
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Invocation is a fully prepared toolchain command, ready to launch.
type Invocation struct {
	Language *lang.Descriptor
	// Command is the invoked command name (argv[0] without directory or .exe).
	Command string
	// Binary is the executable name run for Command.
	Binary   string
	Resolved resolve.ResolvedVersion
	// Path is the executable that will run.
	Path string
	// Args are the forwarded arguments, excluding argv[0].
	Args []string
	// Overlay holds the isolation variables applied on top of the environment.
	Overlay map[string]string
	// Env is the complete environment handed to the target.
	Env []string
}

// Run dispatches argv to the language that owns argv[0].
// On platforms that replace the process image, Run only returns on failure.
func Run(sys System, opts Options, argv []string) error {
	if sys == nil {
		return errors.New(messages.DispatchSystemRequired)
	}
	if len(argv) == 0 {
		return errors.New(messages.DispatchMissingArgv0)
	}
	d, _, ok := lang.ForCommand(argv[0])
	if !ok {
		return fmt.Errorf("%w: "+messages.DispatchUnknownCommandFmt, ErrUnknownCommand, lang.CommandName(argv[0]))
	}
	inv, err := Prepare(sys, opts, d, lang.CommandName(argv[0]), argv)
	if err != nil {
		return err
	}
	logger(opts).Debug(messages.DebugLaunching, "path", inv.Path, "args", inv.Args)
	return sys.Launch(inv.Path, inv.Args, inv.Env)
}

// Prepare resolves the version for command and builds everything needed to launch it.
// argv[0] is the invoked program; a --version <value> pair in argv selects the version.
func Prepare(sys System, opts Options, d *lang.Descriptor, command string, argv []string) (*Invocation, error) {
	if sys == nil {
		return nil, errors.New(messages.DispatchSystemRequired)
	}
	if len(argv) == 0 {
		return nil, errors.New(messages.DispatchMissingArgv0)
	}
	environ := sys.Environ()
	ctx, err := NewContext(sys, environ)
	if err != nil {
		return nil, err
	}
	resolver := NewResolver(sys, opts)

	override := launch.ExtractOverride(argv)
	resolved, err := resolver.Resolve(ctx, d, override)
	if err != nil {
		return nil, err
	}
	logger(opts).Debug(messages.DebugResolved,
		"language", d.Name,
		"version", resolved.Version,
		"source", resolved.Source,
		"description", resolved.Description,
	)

	binary := d.Binary(command)
	path, err := executablePath(resolver, ctx, d, resolved, binary)
	if err != nil {
		return nil, err
	}

	overlay := compose.Compose(d, resolved, ctx.Home)
	return &Invocation{
		Language: d,
		Command:  command,
		Binary:   binary,
		Resolved: resolved,
		Path:     path,
		Args:     launch.FilterArgs(argv),
		Overlay:  overlay,
		Env:      launch.MergeEnv(environ, overlay),
	}, nil
}

// NewContext snapshots the invocation state the resolver reads.
func NewContext(sys System, environ []string) (resolve.Context, error) {
	wd, err := sys.Getwd()
	if err != nil {
		return resolve.Context{}, fmt.Errorf(messages.DispatchGetwdFmt, err)
	}
	// A missing home only disables home-derived variables.
	home, _ := sys.HomeDir()
	return resolve.Context{
		WorkDir:     wd,
		Env:         resolve.EnvMap(environ),
		Home:        home,
		Interactive: sys.IsInteractive(),
	}, nil
}

// NewResolver returns a resolver reading through sys that never picks langshim itself
// from PATH.
func NewResolver(sys System, opts Options) *resolve.Resolver {
	var skip []string
	if self, err := sys.Executable(); err == nil && self != "" {
		skip = append(skip, self)
	}
	return resolve.New(sys, resolve.Options{
		UserRoot:   opts.UserRoot,
		SystemRoot: opts.SystemRoot,
		Skip:       skip,
		Logger:     opts.Logger,
	})
}

// executablePath returns the program to run for binary. Managed versions run
// <root>/bin/<binary>; system toolchains run the PATH entry for binary.
func executablePath(resolver *resolve.Resolver, ctx resolve.Context, d *lang.Descriptor, resolved resolve.ResolvedVersion, binary string) (string, error) {
	locator := resolver.Locator(ctx)
	if resolved.Version == lang.SystemVersion {
		if binary == d.PrimaryBinary {
			return resolved.Path, nil
		}
		path, ok := locator.LookPath(binary)
		if !ok {
			return "", fmt.Errorf("%w: "+messages.DispatchCommandNotOnPathFmt, launch.ErrExecFailure, binary)
		}
		return path, nil
	}
	path, ok := locator.BinaryPath(resolved.Path, binary)
	if !ok {
		return "", fmt.Errorf("%w: "+messages.LaunchExecFailedFmt, launch.ErrExecFailure, binary, errors.New(messages.DispatchExecutableNotFound))
	}
	return path, nil
}

func logger(opts Options) *log.Logger {
	if opts.Logger == nil {
		return logging.Discard()
	}
	return opts.Logger
}
