package namer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/namer"
)

func TestInvalidKeyError_Error(t *testing.T) {
	t.Parallel()

	err := namer.InvalidKeyError{Key: "name", Problem: "problem"}
	assert.Equal(t, "invalid key 'name': problem", err.Error())
	require.ErrorIs(t, err, namer.ErrInvalidKey)
}
