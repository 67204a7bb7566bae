package variable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/driver/dummy"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/namer"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
	"github.com/tarantool/go-knobs/variable"
)

func newKVStore(t *testing.T) (*variable.KVStore, *dummy.Driver) {
	t.Helper()

	drv := dummy.New()

	return variable.NewKVStore(knobs.NewStorage(drv)), drv
}

func TestKVStore_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newKVStore(t)

	v := variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{0x00, 0xff}}
	require.NoError(t, store.Set(ctx, v))

	got, err := store.Get(ctx, "KNOB", testGUID)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))

	_, err = store.Get(ctx, "OTHER", testGUID)
	require.ErrorIs(t, err, variable.ErrNotFound)

	_, err = store.Get(ctx, "KNOB", guid.New())
	require.ErrorIs(t, err, variable.ErrNotFound)
}

func TestKVStore_SetReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newKVStore(t)

	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{1}}))
	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{2, 3}}))

	got, err := store.Get(ctx, "KNOB", testGUID)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got.Data)

	err = store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x7, Data: []byte{4}})
	require.ErrorIs(t, err, variable.ErrAttributeMismatch)

	got, err = store.Get(ctx, "KNOB", testGUID)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got.Data, "rejected write must not change the variable")
}

func TestKVStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newKVStore(t)

	require.ErrorIs(t, store.Delete(ctx, "KNOB", testGUID), variable.ErrNotFound)

	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{1}}))
	require.NoError(t, store.Delete(ctx, "KNOB", testGUID))

	_, err := store.Get(ctx, "KNOB", testGUID)
	require.ErrorIs(t, err, variable.ErrNotFound)

	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{1}}))
	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID}), "empty data deletes")
	require.ErrorIs(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID}), variable.ErrNotFound)
}

func TestKVStore_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newKVStore(t)

	other := guid.MustParse("00000000-0000-0000-0000-000000000001")

	vars := []variable.Variable{
		{Name: "B", GUID: testGUID, Attributes: 0x3, Data: []byte{2}},
		{Name: "A", GUID: testGUID, Attributes: 0x7, Data: []byte{1}},
		{Name: "Z", GUID: other, Attributes: 0x1, Data: []byte{3}},
	}
	for _, v := range vars {
		require.NoError(t, store.Set(ctx, v))
	}

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, "Z", listed[0].Name)
	assert.Equal(t, "A", listed[1].Name)
	assert.Equal(t, variable.Attributes(0x7), listed[1].Attributes)
	assert.Equal(t, "B", listed[2].Name)
}

func TestKVStore_InvalidName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, drv := newKVStore(t)

	require.ErrorIs(t, store.Set(ctx, variable.Variable{GUID: testGUID, Data: []byte{1}}), variable.ErrInvalidName)
	require.ErrorIs(t, store.Delete(ctx, "", testGUID), variable.ErrInvalidName)

	_, err := store.Get(ctx, "", testGUID)
	require.ErrorIs(t, err, variable.ErrInvalidName)
	assert.Zero(t, drv.Mutations())
}

func TestKVStore_CustomNamer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := dummy.New()
	storage := knobs.NewStorage(drv)
	store := variable.NewKVStore(storage, variable.WithNamer(namer.NewDefaultNamer("/board/a")))

	require.NoError(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{1}}))

	values, err := storage.Range(ctx, knobs.WithPrefix("/board/a/var/"))
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "/board/a/var/"+testGUID.String()+"/KNOB", string(values[0].Key))
}

type conflictDriver struct {
	*dummy.Driver
}

// Execute bumps the key before any conditional write so the write loses the race.
func (d conflictDriver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	if len(predicates) > 0 {
		_, err := d.Driver.Execute(ctx, nil, []operation.Operation{
			operation.Put(predicates[0].Key(), []byte{0xc0}),
		}, nil)
		if err != nil {
			return tx.Response{}, err
		}
	}

	return d.Driver.Execute(ctx, predicates, thenOps, elseOps)
}

func TestKVStore_Conflict(t *testing.T) {
	t.Parallel()

	store := variable.NewKVStore(knobs.NewStorage(conflictDriver{dummy.New()}))

	err := store.Set(context.Background(), variable.Variable{Name: "KNOB", GUID: testGUID, Attributes: 0x3, Data: []byte{1}})
	require.ErrorIs(t, err, variable.ErrConflict)
}

type brokenDriver struct{}

var errBackend = errors.New("backend unavailable")

func (brokenDriver) Execute(
	_ context.Context, _ []predicate.Predicate, _ []operation.Operation, _ []operation.Operation,
) (tx.Response, error) {
	return tx.Response{}, errBackend
}

func TestKVStore_BackendError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := variable.NewKVStore(knobs.NewStorage(brokenDriver{}))

	_, err := store.Get(ctx, "KNOB", testGUID)
	require.ErrorIs(t, err, errBackend)
	require.NotErrorIs(t, err, variable.ErrNotFound)

	require.ErrorIs(t, store.Set(ctx, variable.Variable{Name: "KNOB", GUID: testGUID, Data: []byte{1}}), errBackend)
	require.ErrorIs(t, store.Delete(ctx, "KNOB", testGUID), errBackend)

	_, err = store.List(ctx)
	require.ErrorIs(t, err, errBackend)
}
