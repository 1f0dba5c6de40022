package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/langshim/internal/config"
	"github.com/conn-castle/langshim/internal/dispatch"
	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/launch"
	"github.com/conn-castle/langshim/internal/logging"
	"github.com/conn-castle/langshim/internal/messages"
)

// newLauncher builds the launcher used for dispatched commands. Tests replace it.
var newLauncher = func(stdout io.Writer, stderr io.Writer, exit func(int)) launch.Launcher {
	return launch.Default(launch.Stdio{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}, exit)
}

// runEnv is the state every command works from.
type runEnv struct {
	sys  dispatch.System
	opts dispatch.Options
}

func loadEnv(stdout io.Writer, stderr io.Writer, exit func(int)) (*runEnv, error) {
	cfg, _, err := config.Load(config.LoadOptions{})
	if err != nil {
		return nil, err
	}
	return &runEnv{
		sys: dispatch.RealSystem{Launcher: newLauncher(stdout, stderr, exit)},
		opts: dispatch.Options{
			UserRoot:   cfg.UserRoot,
			SystemRoot: cfg.SystemRoot,
			Logger:     logging.New(stderr, cfg.Debug),
		},
	}, nil
}

func loadCmdEnv(cmd *cobra.Command, exit func(int)) (*runEnv, error) {
	return loadEnv(cmd.OutOrStdout(), cmd.ErrOrStderr(), exit)
}

func newRootCmd(exit func(int)) *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newCurrentCmd(exit),
		newWhichCmd(exit),
		newEnvCmd(exit),
		newExecCmd(exit),
		newListCmd(exit),
		newUseCmd(exit),
		newLocalCmd(exit),
		newLanguagesCmd(),
		newDoctorCmd(exit),
	)
	return cmd
}

// findLanguage returns the descriptor for a language argument.
func findLanguage(name string) (*lang.Descriptor, error) {
	d := lang.Find(name)
	if d == nil {
		return nil, fmt.Errorf(messages.UnsupportedLanguageFmt, name)
	}
	return d, nil
}

// overrideArgv builds the argv a command would have been invoked with.
func overrideArgv(command string, version string) []string {
	argv := []string{command}
	if version != "" {
		argv = append(argv, launch.OverrideFlag, version)
	}
	return argv
}
