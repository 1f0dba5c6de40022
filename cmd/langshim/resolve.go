package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/conn-castle/langshim/internal/dispatch"
	"github.com/conn-castle/langshim/internal/messages"
)

func newCurrentCmd(exit func(int)) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := findLanguage(args[0])
			if err != nil {
				return err
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			ctx, err := dispatch.NewContext(env.sys, env.sys.Environ())
			if err != nil {
				return err
			}
			resolved, err := dispatch.NewResolver(env.sys, env.opts).Resolve(ctx, d, version)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), messages.CurrentOutFmt, resolved.Version, resolved.Description)
			return err
		},
	}
	cmd.Flags().StringVar(&version, "version", "", messages.FlagVersionOverride)
	return cmd
}

func newWhichCmd(exit func(int)) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   messages.WhichUse,
		Short: messages.WhichShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := findLanguage(args[0])
			if err != nil {
				return err
			}
			command := d.PrimaryBinary
			if len(args) == 2 {
				command = args[1]
				if _, ok := d.Commands[command]; !ok {
					return fmt.Errorf(messages.CommandNotInLanguageFmt, command, d.Name)
				}
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			inv, err := dispatch.Prepare(env.sys, env.opts, d, command, overrideArgv(command, version))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), inv.Path)
			return err
		},
	}
	cmd.Flags().StringVar(&version, "version", "", messages.FlagVersionOverride)
	return cmd
}

func newEnvCmd(exit func(int)) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   messages.EnvUse,
		Short: messages.EnvShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := findLanguage(args[0])
			if err != nil {
				return err
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			inv, err := dispatch.Prepare(env.sys, env.opts, d, d.PrimaryBinary, overrideArgv(d.PrimaryBinary, version))
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(inv.Overlay))
			for key := range inv.Overlay {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			out := cmd.OutOrStdout()
			for _, key := range keys {
				if _, err := fmt.Fprintf(out, "%s=%s\n", key, inv.Overlay[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "", messages.FlagVersionOverride)
	return cmd
}

func newExecCmd(exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ExecUse,
		Short: messages.ExecShort,
		// Everything after the command name belongs to the toolchain, --version included.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(messages.ExecMissing)
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			return dispatch.Run(env.sys, env.opts, args)
		},
	}
}
