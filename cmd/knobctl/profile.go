package main

import (
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-knobs/crypto"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/profile"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/volume"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "profile",
		Short: "Inspect and publish profile sections",
	}

	cmd.AddCommand(newProfileListCommand(a), newProfileShowCommand(a), newProfilePublishCommand(a))

	return cmd
}

func newProfileListCommand(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List every profile section and its entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			vols, err := a.volumes(ctx)
			if err != nil {
				return err
			}

			var views []profileView

			for _, lister := range vols.listers {
				ids, err := lister.Sections(ctx)
				if err != nil {
					return oops.In("knobctl").Wrapf(err, "failed to list sections")
				}

				for _, g := range ids {
					view := profileView{GUID: g.String(), Entries: nil, Error: ""}

					blob, err := vols.Section(ctx, g)
					if err == nil {
						var entries []variable.Variable

						entries, err = profile.ParseAll(blob)
						view.Entries = recordViews(entries)
					}

					if err != nil {
						view.Error = err.Error()
					}

					views = append(views, view)
				}
			}

			return printYAML(cmd, views)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}

func newProfileShowCommand(a *app) *cobra.Command {
	var (
		name    string
		timeout time.Duration
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "show <guid>",
		Short: "Show the entries of one profile, or one entry with --name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			g, err := guid.Parse(args[0])
			if err != nil {
				return oops.In("knobctl").Wrapf(err, "invalid profile GUID")
			}

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			vols, err := a.volumes(ctx)
			if err != nil {
				return err
			}

			blob, err := vols.Section(ctx, g)
			if err != nil {
				return oops.In("knobctl").With("profile", g).Wrapf(err, "failed to load profile")
			}

			if name != "" {
				entry, err := profile.FindByName(blob, name)
				if err != nil {
					return oops.In("knobctl").With("profile", g, "name", name).Wrapf(err, "lookup failed")
				}

				return printYAML(cmd, newRecordView(entry))
			}

			entries, err := profile.ParseAll(blob)
			if err != nil {
				return oops.In("knobctl").With("profile", g).Wrapf(err, "failed to parse profile")
			}

			return printYAML(cmd, recordViews(entries))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "show only the entry with this name")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}

func newProfilePublishCommand(a *app) *cobra.Command {
	var (
		keyPath string
		timeout time.Duration
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "publish <guid> <blob>",
		Short: "Sign a profile blob and store it in the backend",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			errs := oops.In("knobctl").With("profile", args[0])

			g, err := guid.Parse(args[0])
			if err != nil {
				return errs.Wrapf(err, "invalid profile GUID")
			}

			blob, err := os.ReadFile(args[1])
			if err != nil {
				return errs.Wrapf(err, "failed to read blob")
			}

			if _, err := profile.ParseAll(blob); err != nil {
				return errs.Wrapf(err, "refusing to publish an invalid profile")
			}

			key, err := crypto.LoadPrivateKey(keyPath)
			if err != nil {
				return errs.Wrapf(err, "failed to load private key")
			}

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			signed, err := a.signedVolume(ctx, volume.WithSigner(crypto.NewRSAPSS(key)))
			if err != nil {
				return err
			}

			if err := signed.Publish(ctx, g, blob); err != nil {
				return errs.Wrapf(err, "failed to publish")
			}

			printf(cmd, "published %s (%d bytes)\n", g, len(blob))

			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "", "PEM private key")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	_ = cmd.MarkFlagRequired("key")

	return cmd
}
