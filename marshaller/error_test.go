package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	rootErr := errors.New("root cause")

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		err := errMarshal("yaml", rootErr)
		require.ErrorIs(t, err, rootErr)
		assert.Equal(t, "failed to marshal yaml: root cause", err.Error())
	})

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		err := errUnmarshal("msgpack", rootErr)
		require.ErrorIs(t, err, rootErr)
		assert.Equal(t, "failed to unmarshal msgpack: root cause", err.Error())
	})

	t.Run("nil parent", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errMarshal("yaml", nil))
		require.NoError(t, errUnmarshal("yaml", nil))
	})
}
