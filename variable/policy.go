package variable

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-knobs/guid"
)

// LockOnVarState locks the protected variables once the variable
// (Name, GUID) exists and holds exactly Value.
type LockOnVarState struct {
	Name  string
	GUID  guid.GUID
	Value []byte
}

// Policy protects one variable, or a whole namespace when Name is empty.
type Policy struct {
	Name string
	GUID guid.GUID
	Lock LockOnVarState
}

func (p Policy) matches(name string, g guid.GUID) bool {
	return p.GUID == g && (p.Name == "" || p.Name == name)
}

// PolicyStore enforces write policies on top of another Store.
// Reads pass through unchanged.
type PolicyStore struct {
	Store

	policies []Policy
	logger   logrus.FieldLogger
}

// NewPolicyStore wraps inner. A nil logger means logrus.StandardLogger().
func NewPolicyStore(inner Store, logger logrus.FieldLogger) *PolicyStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &PolicyStore{Store: inner, policies: nil, logger: logger}
}

// RegisterPolicy adds a policy. Policies are never removed.
func (s *PolicyStore) RegisterPolicy(p Policy) error {
	if p.Name != "" {
		if err := ValidateName(p.Name); err != nil {
			return err
		}
	}

	if err := ValidateName(p.Lock.Name); err != nil {
		return fmt.Errorf("lock variable: %w", err)
	}

	s.policies = append(s.policies, p)

	return nil
}

// Policies returns the number of registered policies.
func (s *PolicyStore) Policies() int {
	return len(s.policies)
}

func (s *PolicyStore) check(ctx context.Context, name string, g guid.GUID) error {
	for _, p := range s.policies {
		if !p.matches(name, g) {
			continue
		}

		lock, err := s.Store.Get(ctx, p.Lock.Name, p.Lock.GUID)

		switch {
		case errors.Is(err, ErrNotFound):
			continue
		case err != nil:
			return fmt.Errorf("failed to read lock state of %s: %w", ID(name, g), err)
		case bytes.Equal(lock.Data, p.Lock.Value):
			s.logger.WithFields(logrus.Fields{
				"at":       "variable.PolicyStore.check",
				"variable": ID(name, g),
				"lock":     ID(p.Lock.Name, p.Lock.GUID),
			}).Debug("write_rejected_by_policy")

			return fmt.Errorf("%w: %s", ErrWriteProtected, ID(name, g))
		}
	}

	return nil
}

// Set implements Store.
func (s *PolicyStore) Set(ctx context.Context, v Variable) error {
	if err := s.check(ctx, v.Name, v.GUID); err != nil {
		return err
	}

	return s.Store.Set(ctx, v) //nolint:wrapcheck
}

// Delete implements Store.
func (s *PolicyStore) Delete(ctx context.Context, name string, g guid.GUID) error {
	if err := s.check(ctx, name, g); err != nil {
		return err
	}

	return s.Store.Delete(ctx, name, g) //nolint:wrapcheck
}
