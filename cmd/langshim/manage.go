package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/langshim/internal/dispatch"
	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/locate"
	"github.com/conn-castle/langshim/internal/messages"
	"github.com/conn-castle/langshim/internal/resolve"
)

func newListCmd(exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
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
			locator := dispatch.NewResolver(env.sys, env.opts).Locator(ctx)
			installed, err := locator.Installed(d)
			if err != nil {
				return err
			}
			defaults := map[string]string{}
			for _, scope := range locator.Scopes() {
				version, err := resolve.ReadMarker(env.sys, scope.Root, d.Name)
				if err != nil {
					return err
				}
				defaults[scope.Name] = version
			}

			out := cmd.OutOrStdout()
			if len(installed) == 0 {
				_, _ = fmt.Fprintf(out, messages.ListNoneFmt, d.DisplayName)
			}
			for _, inst := range installed {
				marker := " "
				suffix := ""
				if defaults[inst.Scope] == inst.Version {
					marker = color.GreenString(messages.ListDefaultMarker)
					suffix = color.GreenString(messages.ListDefaultFmt, inst.Scope)
				}
				line := fmt.Sprintf(messages.ListEntryFmt, marker, inst.Version, inst.Scope)
				if _, err := fmt.Fprintln(out, line+suffix); err != nil {
					return err
				}
			}
			if path, ok := locator.LookPath(d.PrimaryBinary); ok {
				_, _ = fmt.Fprintf(out, messages.ListSystemEntryFmt, lang.SystemVersion, path)
			}
			return nil
		},
	}
}

func newUseCmd(exit func(int)) *cobra.Command {
	var system bool
	cmd := &cobra.Command{
		Use:   messages.UseUse,
		Short: messages.UseShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := findLanguage(args[0])
			if err != nil {
				return err
			}
			version := strings.TrimSpace(args[1])
			if version != lang.SystemVersion && !locate.ValidVersion(version) {
				return fmt.Errorf(messages.InvalidVersionFmt, version)
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			ctx, err := dispatch.NewContext(env.sys, env.sys.Environ())
			if err != nil {
				return err
			}
			locator := dispatch.NewResolver(env.sys, env.opts).Locator(ctx)

			scope := locate.Scope{Name: locate.ScopeUser, Root: env.opts.UserRoot}
			if system {
				scope = locate.Scope{Name: locate.ScopeSystem, Root: env.opts.SystemRoot}
			}
			if _, ok := locator.Locate(d, version); !ok {
				return fmt.Errorf(messages.UseNotInstalledFmt, d.Name, version)
			}
			// A system default must not point into one user's tree.
			if system && version != lang.SystemVersion {
				if _, ok := locator.BinaryPath(locate.InstallDir(scope.Root, d.Name, version), d.PrimaryBinary); !ok {
					return fmt.Errorf(messages.UseNotInstalledScopeFmt, d.Name, version, scope.Name, scope.Root)
				}
			}
			if err := writeMarker(scope.Root, d.Name, version); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), messages.UseDoneFmt, scope.Name, d.Name, version)
			return err
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, messages.FlagUseSystem)
	return cmd
}

// writeMarker records version as the default for language under a scope root.
func writeMarker(root string, language string, version string) error {
	path := locate.MarkerPath(root, language)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.MarkerWriteFailedFmt, path, err)
	}
	if err := os.WriteFile(path, []byte(version+"\n"), 0o644); err != nil {
		return fmt.Errorf(messages.MarkerWriteFailedFmt, path, err)
	}
	return nil
}

func newLocalCmd(exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:   messages.LocalUse,
		Short: messages.LocalShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := findLanguage(args[0])
			if err != nil {
				return err
			}
			name, ok := d.LocalFile()
			if !ok {
				return fmt.Errorf(messages.LocalNoFileFmt, d.Name)
			}
			version := strings.TrimSpace(args[1])
			if version != lang.SystemVersion && !locate.ValidVersion(version) {
				return fmt.Errorf(messages.InvalidVersionFmt, version)
			}
			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			ctx, err := dispatch.NewContext(env.sys, env.sys.Environ())
			if err != nil {
				return err
			}
			if _, ok := dispatch.NewResolver(env.sys, env.opts).Locator(ctx).Locate(d, version); !ok {
				_, _ = color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), messages.LocalNotInstalled, d.Name, version)
			}
			path := filepath.Join(ctx.WorkDir, name)
			if err := os.WriteFile(path, []byte(version+"\n"), 0o644); err != nil {
				return fmt.Errorf(messages.LocalWriteFmt, path, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), messages.LocalDoneFmt, version, path)
			return err
		},
	}
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.LanguagesUse,
		Short: messages.LanguagesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, messages.LanguagesHeader)
			for _, d := range lang.All {
				files := make([]string, 0, len(d.VersionFiles))
				for _, f := range d.VersionFiles {
					files = append(files, f.Name)
				}
				_, _ = fmt.Fprintf(w, messages.LanguagesRowFmt, d.Name, d.DisplayName, strings.Join(files, ", "), strings.Join(d.CommandNames(), ", "))
			}
			return w.Flush()
		},
	}
}
