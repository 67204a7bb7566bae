package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-knobs/platform"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
)

func (a *app) settingsEngine(store *variable.PolicyStore, access settings.Access, r platform.Resetter) *settings.Engine {
	return settings.New(store, access, r,
		settings.WithLogger(a.logger),
		settings.WithManagedPrefix(a.cfg.ManagedPrefix),
	)
}

func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, oops.In("knobctl").With("path", path).Wrapf(err, "failed to create output")
	}

	return f, f.Close, nil
}

func newApplyCommand(a *app) *cobra.Command {
	var (
		token   uint64
		out     string
		timeout time.Duration
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "apply <packet.xml>",
		Short: "Apply a settings packet and print the results packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			packet, err := os.ReadFile(args[0])
			if err != nil {
				return oops.In("knobctl").With("path", args[0]).Wrapf(err, "failed to read packet")
			}

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			store, err := a.variables(ctx)
			if err != nil {
				return err
			}

			policies := variable.NewPolicyStore(store, a.logger)
			resetter := &platform.RecordingResetter{} //nolint:exhaustruct

			w, closeOut, err := output(cmd, out)
			if err != nil {
				return err
			}

			err = a.settingsEngine(policies, a.access(ctx, policies), resetter).
				Apply(ctx, packet, settings.AuthToken(token), w)

			if cerr := closeOut(); cerr != nil && err == nil {
				err = cerr
			}

			// The reset is only recorded here, so a returning reset is the normal outcome.
			if errors.Is(err, platform.ErrResetReturned) && !errors.Is(err, settings.ErrResultsNotWritten) {
				err = nil
			}

			for _, reset := range resetViews(resetter) {
				a.logger.WithField("reset", reset).Info("system_reset_requested")
			}

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().Uint64Var(&token, "token", 0, "auth token for managed settings")
	cmd.Flags().StringVarP(&out, "out", "o", "", "results file, stdout by default")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}

func newDumpCommand(a *app) *cobra.Command {
	var (
		out     string
		timeout time.Duration
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "dump",
		Short: "Print the current settings packet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			store, err := a.variables(ctx)
			if err != nil {
				return err
			}

			policies := variable.NewPolicyStore(store, a.logger)

			doc, err := a.settingsEngine(policies, a.access(ctx, policies), &platform.RecordingResetter{}).Dump(ctx) //nolint:exhaustruct
			if err != nil {
				return err //nolint:wrapcheck
			}

			w, closeOut, err := output(cmd, out)
			if err != nil {
				return err
			}

			if _, err := w.Write(doc); err != nil {
				_ = closeOut()
				return oops.In("knobctl").Wrapf(err, "failed to write dump")
			}

			return closeOut()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout by default")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}
