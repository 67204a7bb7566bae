package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/profile"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
)

// ReadyToBootName is the phase indicator variable that locks profile knobs.
const ReadyToBootName = "ReadyToBoot"

//nolint:gochecknoglobals
var (
	// ReadyToBootNamespace is the GUID of the phase indicator variable.
	ReadyToBootNamespace = guid.MustParse("0C1F3B5A-8E2D-4B67-9A14-5F6E7D8C9B0A")
	// ReadyToBootValue is the indicator value that locks the knobs.
	ReadyToBootValue = []byte{0x01}
)

// PolicyStore is a variable store that accepts write policies.
type PolicyStore interface {
	variable.Store
	RegisterPolicy(p variable.Policy) error
}

type registerOptions struct {
	prefix   string
	lock     variable.LockOnVarState
	logger   logrus.FieldLogger
	defaults bool
}

func defaultRegisterOptions() registerOptions {
	return registerOptions{
		prefix: settings.DefaultManagedPrefix,
		lock: variable.LockOnVarState{
			Name:  ReadyToBootName,
			GUID:  ReadyToBootNamespace,
			Value: ReadyToBootValue,
		},
		logger:   logrus.StandardLogger(),
		defaults: true,
	}
}

// Option configures Register.
type Option = options.OptionCallback[registerOptions]

// WithPrefix sets the Id prefix of the registered settings.
func WithPrefix(prefix string) Option {
	return func(o *registerOptions) {
		o.prefix = prefix
	}
}

// WithLock overrides the phase indicator that locks the knobs.
func WithLock(lock variable.LockOnVarState) Option {
	return func(o *registerOptions) {
		o.lock = lock
	}
}

// WithoutDefaults registers the settings without initializing missing
// variables, leaving the store untouched.
func WithoutDefaults() Option {
	return func(o *registerOptions) {
		o.defaults = false
	}
}

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *registerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Register exposes every entry of the profile blob as a setting in support.
// A missing variable is initialized with the profile default unless
// WithoutDefaults is given; an existing one is left alone. Registration stops at the first failing entry.
func Register(ctx context.Context, support *Registry, store PolicyStore, blob []byte, opts ...Option) error {
	o := options.ApplyOptions(defaultRegisterOptions, opts)
	log := o.logger.WithFields(logrus.Fields{"at": "provider.Register"})

	entries, err := profile.ParseAll(blob)
	if err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}

	for _, entry := range entries {
		if err := registerEntry(ctx, support, store, entry, o); err != nil {
			log.WithError(err).WithField("variable", entry.String()).Error("failed_to_register_setting")
			return fmt.Errorf("failed to register %s: %w", entry, err)
		}
	}

	log.WithField("settings", len(entries)).Debug("settings_registered")

	return nil
}

func registerEntry(ctx context.Context, support *Registry, store PolicyStore, entry variable.Variable, o registerOptions) error {
	if o.defaults {
		_, err := store.Get(ctx, entry.Name, entry.GUID)

		switch {
		case errors.Is(err, variable.ErrNotFound) && entry.Size() > 0:
			if err := store.Set(ctx, entry); err != nil {
				return fmt.Errorf("failed to write default: %w", err)
			}
		case err != nil && !errors.Is(err, variable.ErrNotFound):
			return err //nolint:wrapcheck
		}
	}

	err := support.Add(&VariableSetting{
		id:         o.prefix + entry.Name,
		store:      store,
		name:       entry.Name,
		guid:       entry.GUID,
		attributes: entry.Attributes,
		size:       entry.Size(),
	})
	if err != nil {
		return err
	}

	return store.RegisterPolicy(variable.Policy{Name: entry.Name, GUID: entry.GUID, Lock: o.lock}) //nolint:wrapcheck
}

// VariableSetting is a setting stored in one variable with a fixed size and
// attributes taken from the profile default.
type VariableSetting struct {
	id         string
	store      variable.Store
	name       string
	guid       guid.GUID
	attributes variable.Attributes
	size       int
}

// ID returns the setting Id.
func (s *VariableSetting) ID() string {
	return s.id
}

// Backing returns the identity of the variable.
func (s *VariableSetting) Backing() (string, guid.GUID) {
	return s.name, s.guid
}

// Get returns the variable data.
func (s *VariableSetting) Get(ctx context.Context) ([]byte, error) {
	v, err := s.store.Get(ctx, s.name, s.guid)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return v.Data, nil
}

// Set writes value if it has the default's size.
func (s *VariableSetting) Set(ctx context.Context, value []byte) (settings.Flags, error) {
	if len(value) != s.size {
		return 0, fmt.Errorf("%w: %s takes %d bytes, got %d", settings.ErrInvalidValue, s.id, s.size, len(value))
	}

	current, err := s.store.Get(ctx, s.name, s.guid)

	switch {
	case err == nil && current.Attributes == s.attributes && bytes.Equal(current.Data, value):
		return settings.FlagAlreadySet, nil
	case errors.Is(err, variable.ErrNotFound) && s.size == 0:
		return settings.FlagAlreadySet, nil
	}

	err = s.store.Set(ctx, variable.Variable{
		Name:       s.name,
		GUID:       s.guid,
		Attributes: s.attributes,
		Data:       bytes.Clone(value),
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return settings.FlagResetRequired, nil
}
