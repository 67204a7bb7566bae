package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-knobs/operation"
)

func TestGet(t *testing.T) {
	t.Parallel()

	key := []byte("/knobs/var/guid/KNOB")
	op := operation.Get(key)

	assert.Equal(t, operation.TypeGet, op.Type())
	assert.Equal(t, key, op.Key())
	assert.Nil(t, op.Value())
	assert.False(t, op.IsPrefix())
}

func TestPut(t *testing.T) {
	t.Parallel()

	key := []byte("/knobs/var/guid/KNOB")
	value := []byte{0x01, 0x02}
	op := operation.Put(key, value)

	assert.Equal(t, operation.TypePut, op.Type())
	assert.Equal(t, key, op.Key())
	assert.Equal(t, value, op.Value())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	key := []byte("/knobs/var/")
	op := operation.Delete(key)

	assert.Equal(t, operation.TypeDelete, op.Type())
	assert.Equal(t, key, op.Key())
	assert.Nil(t, op.Value())
	assert.True(t, op.IsPrefix())
}
