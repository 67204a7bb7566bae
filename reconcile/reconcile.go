// Package reconcile brings persisted variables in line with the active
// profile before boot continues. Any correction ends in a cold reset so the
// rest of the boot never sees a half-updated configuration.
package reconcile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/platform"
	"github.com/tarantool/go-knobs/profile"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/volume"
)

// Selector reports the profile the platform claims to be running.
type Selector interface {
	ActiveProfile(ctx context.Context) (guid.GUID, error)
}

// StaticSelector always returns the same claim.
type StaticSelector struct {
	GUID guid.GUID
	Err  error
}

// ActiveProfile implements Selector.
func (s StaticSelector) ActiveProfile(context.Context) (guid.GUID, error) {
	return s.GUID, s.Err
}

// Report describes one reconciliation pass.
type Report struct {
	Active       guid.GUID
	Claimed      guid.GUID
	CacheUpdated bool
	// Skipped is set in manufacturing mode, when entries are not compared.
	Skipped   bool
	Corrected []string
	// Failed lists entries whose correction could not be written.
	Failed []string
}

// Engine runs reconciliation passes.
type Engine struct {
	store     variable.Store
	volumes   volume.Source
	selector  Selector
	resetter  platform.Resetter
	publisher platform.Publisher
	opts      engineOptions
}

// New creates an Engine.
func New(
	store variable.Store,
	volumes volume.Source,
	selector Selector,
	resetter platform.Resetter,
	publisher platform.Publisher,
	opts ...Option,
) *Engine {
	return &Engine{
		store:     store,
		volumes:   volumes,
		selector:  selector,
		resetter:  resetter,
		publisher: publisher,
		opts:      options.ApplyOptions(defaultOptions, opts),
	}
}

func (e *Engine) log(at string) *logrus.Entry {
	return e.opts.logger.WithFields(logrus.Fields{"at": "reconcile." + at})
}

// readCache returns the cached active profile when it is present and well formed.
func (e *Engine) readCache(ctx context.Context) option.Generic[guid.GUID] {
	v, err := e.store.Get(ctx, e.opts.cacheName, e.opts.cacheGUID)
	if err != nil {
		if !errors.Is(err, variable.ErrNotFound) {
			e.log("Engine.readCache").WithError(err).Warn("failed_to_read_profile_cache")
		}

		return option.None[guid.GUID]()
	}

	g, err := guid.FromBytes(v.Data)
	if err != nil {
		e.log("Engine.readCache").WithField("size", v.Size()).Warn("invalid_profile_cache")
		return option.None[guid.GUID]()
	}

	return option.Some(g)
}

// resolve asks the selector for a claim and validates it against the allow-list.
func (e *Engine) resolve(ctx context.Context) (guid.GUID, guid.GUID) {
	log := e.log("Engine.resolve")

	claimed, err := e.selector.ActiveProfile(ctx)

	switch {
	case err != nil:
		log.WithError(err).Warn("profile_selector_failed")
		return guid.Zero, e.opts.generic
	case claimed == e.opts.generic:
		return claimed, claimed
	case len(e.opts.allowList) == 0:
		log.WithField("claimed", claimed).Warn("profile_allow_list_empty")
		return claimed, e.opts.generic
	case !slices.Contains(e.opts.allowList, claimed):
		log.WithField("claimed", claimed).Warn("profile_not_allowed")
		return claimed, e.opts.generic
	default:
		return claimed, claimed
	}
}

// write stores v, replacing a variable with other attributes.
func (e *Engine) write(ctx context.Context, v variable.Variable) error {
	err := e.store.Set(ctx, v)
	if !errors.Is(err, variable.ErrAttributeMismatch) {
		return err //nolint:wrapcheck
	}

	if err := e.store.Delete(ctx, v.Name, v.GUID); err != nil && !errors.Is(err, variable.ErrNotFound) {
		return err //nolint:wrapcheck
	}

	return e.store.Set(ctx, v) //nolint:wrapcheck
}

// Run executes one reconciliation pass. When a correction was made it resets
// the platform and, should the reset return, reports platform.ErrResetReturned.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	log := e.log("Engine.Run")

	cached := e.readCache(ctx)
	claimed, active := e.resolve(ctx)
	report := Report{Active: active, Claimed: claimed} //nolint:exhaustruct

	log = log.WithField("profile", active)

	if !cached.IsSome() || cached.UnwrapOr(guid.Zero) != active {
		err := e.write(ctx, variable.Variable{
			Name:       e.opts.cacheName,
			GUID:       e.opts.cacheGUID,
			Attributes: variable.NonVolatile | variable.BootServiceAccess,
			Data:       active.Bytes(),
		})
		if err != nil {
			log.WithError(err).Error("failed_to_write_profile_cache")
		} else {
			report.CacheUpdated = true
		}
	}

	if e.opts.manufacturing(ctx) {
		log.Info("manufacturing_mode_skipping_reconciliation")

		report.Skipped = true
		e.publisher.Publish(ctx, platform.EventProfileValidated)

		return report, nil
	}

	blob, err := e.volumes.Section(ctx, active)
	if err != nil {
		return report, fmt.Errorf("failed to load profile %s: %w", active, err)
	}

	entries, err := profile.ParseAll(blob)
	if err != nil {
		return report, fmt.Errorf("failed to parse profile %s: %w", active, err)
	}

	for _, entry := range entries {
		corrected, err := e.reconcileEntry(ctx, entry)
		if corrected {
			report.Corrected = append(report.Corrected, entry.String())
		}

		if err != nil {
			report.Failed = append(report.Failed, entry.String())
		}
	}

	if len(report.Corrected) > 0 {
		log.WithFields(logrus.Fields{
			"corrected": len(report.Corrected),
			"failed":    len(report.Failed),
		}).Info("profile_corrected_resetting")

		e.resetter.ResetSystem(ctx, platform.ResetCold, e.opts.resetSubtype)

		return report, platform.ErrResetReturned
	}

	log.WithField("entries", len(entries)).Debug("profile_validated")
	e.publisher.Publish(ctx, platform.EventProfileValidated)

	return report, nil
}

// reconcileEntry reports whether entry needed a correction. Failures are
// logged and returned but never stop the pass.
func (e *Engine) reconcileEntry(ctx context.Context, entry variable.Variable) (bool, error) {
	log := e.log("Engine.reconcileEntry").WithField("variable", entry.String())

	current, err := e.store.Get(ctx, entry.Name, entry.GUID)

	switch {
	case errors.Is(err, variable.ErrNotFound) && entry.Size() == 0:
		return false, nil
	case err != nil || current.Size() != entry.Size() || current.Attributes != entry.Attributes:
		if err != nil && !errors.Is(err, variable.ErrNotFound) {
			log.WithError(err).Warn("failed_to_read_variable")
		}

		err = e.store.Delete(ctx, entry.Name, entry.GUID)
		if err != nil && !errors.Is(err, variable.ErrNotFound) {
			log.WithError(err).Warn("failed_to_delete_variable")
		}

		if entry.Size() == 0 {
			log.Info("variable_removed")
			return true, nil
		}

		if err := e.store.Set(ctx, entry); err != nil {
			log.WithError(err).Error("failed_to_write_variable")
			return true, err //nolint:wrapcheck
		}

		log.Info("variable_replaced")

		return true, nil
	case !bytes.Equal(current.Data, entry.Data):
		if err := e.store.Set(ctx, entry); err != nil {
			log.WithError(err).Error("failed_to_write_variable")
			return true, err //nolint:wrapcheck
		}

		log.Info("variable_overwritten")

		return true, nil
	default:
		return false, nil
	}
}
