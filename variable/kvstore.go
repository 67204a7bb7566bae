package variable

import (
	"context"
	"errors"
	"fmt"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/marshaller"
	"github.com/tarantool/go-knobs/namer"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
)

// DefaultPrefix is the key prefix used by KVStore unless overridden.
const DefaultPrefix = "/knobs"

// storedRecord is the value kept under a variable key.
type storedRecord struct {
	Attributes uint32 `msgpack:"attributes"`
	Data       []byte `msgpack:"data"`
}

// KVStore keeps variables in a knobs.Storage, one key per variable.
type KVStore struct {
	storage    knobs.Storage
	namer      namer.Namer
	marshaller marshaller.TypedMarshaller[storedRecord]
}

var _ Store = &KVStore{} //nolint:exhaustruct

// KVStoreOption configures a KVStore.
type KVStoreOption = options.OptionCallback[KVStore]

// WithNamer overrides the key layout.
func WithNamer(n namer.Namer) KVStoreOption {
	return func(s *KVStore) {
		s.namer = n
	}
}

// NewKVStore creates a store on top of storage.
func NewKVStore(storage knobs.Storage, opts ...KVStoreOption) *KVStore {
	s := options.ApplyOptions(func() KVStore {
		return KVStore{
			storage:    storage,
			namer:      namer.NewDefaultNamer(DefaultPrefix),
			marshaller: marshaller.NewTypedMsgpackMarshaller[storedRecord](),
		}
	}, opts)

	return &s
}

func (s *KVStore) decode(name string, g guid.GUID, raw []byte) (Variable, error) {
	rec, err := s.marshaller.Unmarshal(raw)
	if err != nil {
		return Variable{}, fmt.Errorf("failed to decode %s: %w", ID(name, g), err)
	}

	return Variable{Name: name, GUID: g, Attributes: Attributes(rec.Attributes), Data: rec.Data}, nil
}

// get returns the variable and the revision of its key; revision 0 means absent.
func (s *KVStore) get(ctx context.Context, name string, g guid.GUID) (Variable, int64, error) {
	resp, err := s.storage.Tx(ctx).Then(operation.Get(s.namer.VariableKey(name, g))).Commit()
	if err != nil {
		return Variable{}, 0, fmt.Errorf("failed to read %s: %w", ID(name, g), err)
	}

	if len(resp.Results) != 1 || len(resp.Results[0].Values) == 0 {
		return Variable{}, 0, ErrNotFound
	}

	value := resp.Results[0].Values[0]

	v, err := s.decode(name, g, value.Value)
	if err != nil {
		return Variable{}, 0, err
	}

	return v, value.ModRevision, nil
}

// Get implements Store.
func (s *KVStore) Get(ctx context.Context, name string, g guid.GUID) (Variable, error) {
	if err := ValidateName(name); err != nil {
		return Variable{}, err
	}

	v, _, err := s.get(ctx, name, g)

	return v, err
}

// Set implements Store.
func (s *KVStore) Set(ctx context.Context, v Variable) error {
	if err := ValidateName(v.Name); err != nil {
		return err
	}

	if len(v.Data) == 0 {
		return s.Delete(ctx, v.Name, v.GUID)
	}

	current, revision, err := s.get(ctx, v.Name, v.GUID)

	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return err
	case current.Attributes != v.Attributes:
		return fmt.Errorf("%w: %s stored as %s, got %s",
			ErrAttributeMismatch, v, current.Attributes, v.Attributes)
	}

	raw, err := s.marshaller.Marshal(storedRecord{Attributes: uint32(v.Attributes), Data: v.Data})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", v, err)
	}

	key := s.namer.VariableKey(v.Name, v.GUID)

	resp, err := s.storage.Tx(ctx).
		If(predicate.VersionEqual(key, revision)).
		Then(operation.Put(key, raw)).
		Commit()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", v, err)
	}

	if !resp.Succeeded {
		return fmt.Errorf("%w: %s", ErrConflict, v)
	}

	return nil
}

// Delete implements Store.
func (s *KVStore) Delete(ctx context.Context, name string, g guid.GUID) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	resp, err := s.storage.Tx(ctx).Then(operation.Delete(s.namer.VariableKey(name, g))).Commit()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", ID(name, g), err)
	}

	if len(resp.Results) != 1 || len(resp.Results[0].Values) == 0 {
		return ErrNotFound
	}

	return nil
}

// List implements Store. Variables are ordered by GUID, then name.
func (s *KVStore) List(ctx context.Context) ([]Variable, error) {
	values, err := s.storage.Range(ctx, knobs.WithPrefix(string(s.namer.VariablePrefix())))
	if err != nil {
		return nil, fmt.Errorf("failed to list variables: %w", err)
	}

	out := make([]Variable, 0, len(values))

	for _, value := range values {
		key, err := s.namer.ParseKey(value.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to list variables: %w", err)
		}

		v, err := s.decode(key.Name, key.GUID, value.Value)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}
