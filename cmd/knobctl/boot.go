package main

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/platform"
	"github.com/tarantool/go-knobs/provider"
	"github.com/tarantool/go-knobs/reconcile"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
)

func resetViews(r *platform.RecordingResetter) []string {
	var out []string
	for _, reset := range r.Resets() {
		out = append(out, reset.Type.String()+" "+reset.Subtype.String())
	}

	return out
}

// registerSettings exposes the knobs of profile g through a provider registry.
func (a *app) registerSettings(
	ctx context.Context,
	store *variable.PolicyStore,
	vols profileVolumes,
	g guid.GUID,
	opts ...provider.Option,
) (*provider.Registry, error) {
	blob, err := vols.Section(ctx, g)
	if err != nil {
		return nil, oops.In("knobctl").With("profile", g).Wrapf(err, "failed to load profile")
	}

	registry := provider.NewRegistry()

	opts = append([]provider.Option{
		provider.WithPrefix(a.cfg.ManagedPrefix),
		provider.WithLogger(a.logger),
	}, opts...)

	err = provider.Register(ctx, registry, store, blob, opts...)
	if err != nil {
		return nil, oops.In("knobctl").With("profile", g).Wrapf(err, "failed to register settings")
	}

	return registry, nil
}

// access returns the settings of the profile cached by the last boot, or nil
// when no boot has run against this backend. Profile defaults are written by
// boot only, so access leaves the store untouched.
func (a *app) access(ctx context.Context, store *variable.PolicyStore) settings.Access {
	log := a.logger.WithFields(logrus.Fields{"at": "knobctl.access"})

	cache, err := store.Get(ctx, reconcile.CacheVariableName, reconcile.CacheNamespace)
	if err != nil {
		log.WithError(err).Info("no_cached_profile_managed_settings_disabled")
		return nil
	}

	g, err := guid.FromBytes(cache.Data)
	if err != nil {
		log.WithError(err).Warn("invalid_cached_profile")
		return nil
	}

	vols, err := a.volumes(ctx)
	if err != nil {
		log.WithError(err).Warn("no_profile_volume")
		return nil
	}

	registry, err := a.registerSettings(ctx, store, vols, g, provider.WithoutDefaults())
	if err != nil {
		log.WithError(err).Warn("managed_settings_disabled")
		return nil
	}

	return registry
}

func newBootCommand(a *app) *cobra.Command {
	var (
		manufacturing bool
		timeout       time.Duration
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "boot",
		Short: "Reconcile persisted variables with the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			ctx, cancel := withTimeout(cmd, timeout)
			defer cancel()

			store, err := a.variables(ctx)
			if err != nil {
				return err
			}

			vols, err := a.volumes(ctx)
			if err != nil {
				return err
			}

			// Validated by config.Load.
			claim, _ := a.cfg.ActiveProfile()
			generic, _ := a.cfg.GenericProfile()
			allow, _ := a.cfg.AllowList()

			policies := variable.NewPolicyStore(store, a.logger)
			resetter := &platform.RecordingResetter{} //nolint:exhaustruct
			bus := platform.NewBus()

			engine := reconcile.New(policies, vols, reconcile.StaticSelector{GUID: claim, Err: nil}, resetter, bus,
				reconcile.WithAllowList(allow...),
				reconcile.WithGenericProfile(generic),
				reconcile.WithManufacturingCheck(func(context.Context) bool { return manufacturing }),
				reconcile.WithLogger(a.logger),
			)

			report, err := engine.Run(ctx)
			if err != nil && !errors.Is(err, platform.ErrResetReturned) {
				return oops.In("knobctl").Wrapf(err, "reconciliation failed")
			}

			view := bootView{
				Active:       report.Active.String(),
				Claimed:      report.Claimed.String(),
				CacheUpdated: report.CacheUpdated,
				Skipped:      report.Skipped,
				Corrected:    report.Corrected,
				Failed:       report.Failed,
				Resets:       resetViews(resetter),
				Settings:     nil,
			}

			var registerErr error

			// Runs right away if the profile was validated during Run.
			bus.Subscribe(ctx, platform.EventProfileValidated, func(ctx context.Context, _ platform.Event) {
				registry, err := a.registerSettings(ctx, policies, vols, report.Active)
				if err != nil {
					registerErr = err
					return
				}

				view.Settings = registry.IDs()
			})

			if registerErr != nil {
				return registerErr
			}

			return printYAML(cmd, view)
		},
	}

	cmd.Flags().BoolVar(&manufacturing, "manufacturing", false, "trust persisted variables and skip reconciliation")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}
