package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/langshim/internal/config"
	"github.com/conn-castle/langshim/internal/dispatch"
	"github.com/conn-castle/langshim/internal/doctor"
	"github.com/conn-castle/langshim/internal/messages"
	"github.com/conn-castle/langshim/internal/resolve"
)

func newDoctorCmd(exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, path, err := config.Load(config.LoadOptions{})
			if err != nil {
				return err
			}
			if path == "" {
				_, _ = fmt.Fprintln(out, messages.DoctorConfigNone)
			} else {
				_, _ = fmt.Fprintf(out, messages.DoctorConfigFmt, path)
			}

			env, err := loadCmdEnv(cmd, exit)
			if err != nil {
				return err
			}
			ctx, err := dispatch.NewContext(env.sys, env.sys.Environ())
			if err != nil {
				return err
			}
			// No skip list: the link check needs to see langshim itself on PATH.
			locator := resolve.New(env.sys, resolve.Options{
				UserRoot:   env.opts.UserRoot,
				SystemRoot: env.opts.SystemRoot,
			}).Locator(ctx)
			self, _ := env.sys.Executable()

			var results []doctor.Result
			results = append(results, doctor.CheckScopes(env.sys, locator.Scopes())...)
			results = append(results, doctor.CheckDefaults(env.sys, locator)...)
			results = append(results, doctor.CheckLinks(locator, self)...)
			for _, r := range results {
				printResult(out, r)
			}

			if doctor.Failed(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, r.Recommendation)
	}
}
