// Package provider exposes profile knobs as individually addressable
// managed settings.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
)

// ErrDuplicateSetting is returned when an Id is registered twice.
var ErrDuplicateSetting = errors.New("setting already registered")

// Setting is one managed setting.
type Setting interface {
	ID() string
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, value []byte) (settings.Flags, error)
}

// backed is implemented by settings stored in exactly one variable.
type backed interface {
	Backing() (string, guid.GUID)
}

// TokenVerifier authorizes managed setting writes.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token settings.AuthToken) error
}

// TokenVerifierFunc adapts a function to TokenVerifier.
type TokenVerifierFunc func(ctx context.Context, token settings.AuthToken) error

// VerifyToken implements TokenVerifier.
func (f TokenVerifierFunc) VerifyToken(ctx context.Context, token settings.AuthToken) error {
	return f(ctx, token)
}

// Registry holds registered settings and implements settings.Access.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]Setting
	byVar    map[string]string
	verifier TokenVerifier
}

var _ settings.Access = &Registry{} //nolint:exhaustruct

// RegistryOption configures a Registry.
type RegistryOption = options.OptionCallback[Registry]

// WithTokenVerifier makes Set check tokens with v.
func WithTokenVerifier(v TokenVerifier) RegistryOption {
	return func(r *Registry) {
		r.verifier = v
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		mu:       sync.RWMutex{},
		settings: make(map[string]Setting),
		byVar:    make(map[string]string),
		verifier: nil,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Add registers s under s.ID().
func (r *Registry) Add(s Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := s.ID()
	if _, ok := r.settings[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSetting, id)
	}

	r.settings[id] = s

	if b, ok := s.(backed); ok {
		r.byVar[variable.ID(b.Backing())] = id
	}

	return nil
}

func (r *Registry) lookup(id string) (Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", settings.ErrUnknownSetting, id)
	}

	return s, nil
}

// IDs returns the registered Ids in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.settings))
	for id := range r.settings {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Get implements settings.Access.
func (r *Registry) Get(ctx context.Context, id string) ([]byte, error) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx) //nolint:wrapcheck
}

// Set implements settings.Access.
func (r *Registry) Set(ctx context.Context, id string, value []byte, token settings.AuthToken) (settings.Flags, error) {
	s, err := r.lookup(id)
	if err != nil {
		return 0, err
	}

	if r.verifier != nil {
		if err := r.verifier.VerifyToken(ctx, token); err != nil {
			return 0, fmt.Errorf("%w: %w", settings.ErrAccessDenied, err)
		}
	}

	return s.Set(ctx, value) //nolint:wrapcheck
}

// Resolve implements settings.Access.
func (r *Registry) Resolve(name string, g guid.GUID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byVar[variable.ID(name, g)]

	return id, ok
}
