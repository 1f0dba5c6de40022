package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/langshim/internal/dispatch"
	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the management CLI with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) error {
	cmd := newRootCmd(exit)
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain dispatches when invoked through a toolchain link and runs the management CLI
// otherwise, exiting on fatal errors.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	var err error
	if len(args) > 0 && isShimInvocation(args[0]) {
		err = runShim(args, stdout, stderr, exit)
	} else {
		err = executeFunc(args, stdout, stderr, exit)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// isShimInvocation reports whether argv[0] names a managed toolchain command.
func isShimInvocation(program string) bool {
	_, _, ok := lang.ForCommand(program)
	return ok
}

// runShim forwards a toolchain invocation. On success with process replacement it never
// returns.
func runShim(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) error {
	env, err := loadEnv(stdout, stderr, exit)
	if err != nil {
		return err
	}
	return dispatch.Run(env.sys, env.opts, args)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
