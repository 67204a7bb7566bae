package guid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/guid"
)

const globalVariable = "8BE4DF61-93CA-11D2-AA0D-00E098032B8C"

func TestParse_BinaryLayout(t *testing.T) {
	t.Parallel()

	g, err := guid.Parse(globalVariable)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x61, 0xDF, 0xE4, 0x8B,
		0xCA, 0x93,
		0xD2, 0x11,
		0xAA, 0x0D, 0x00, 0xE0, 0x98, 0x03, 0x2B, 0x8C,
	}, g.Bytes())
	assert.Equal(t, globalVariable, g.String())
}

func TestParse_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"lower case", "8be4df61-93ca-11d2-aa0d-00e098032b8c"},
		{"braced", "{8BE4DF61-93CA-11D2-AA0D-00E098032B8C}"},
		{"urn", "urn:uuid:8be4df61-93ca-11d2-aa0d-00e098032b8c"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			g, err := guid.Parse(test.in)
			require.NoError(t, err)
			assert.Equal(t, guid.MustParse(globalVariable), g)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not-a-guid", "8BE4DF61-93CA-11D2-AA0D-00E098032B8"} {
		_, err := guid.Parse(in)
		require.Error(t, err, in)
	}

	assert.Panics(t, func() { guid.MustParse("bad") })
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	g := guid.MustParse(globalVariable)

	back, err := guid.FromBytes(g.Bytes())
	require.NoError(t, err)
	assert.Equal(t, g, back)

	_, err = guid.FromBytes(make([]byte, 15))
	require.ErrorIs(t, err, guid.ErrInvalidLength)
}

func TestBytes_IsCopy(t *testing.T) {
	t.Parallel()

	g := guid.MustParse(globalVariable)
	b := g.Bytes()
	b[0] = 0

	assert.Equal(t, byte(0x61), g[0])
}

func TestNewAndZero(t *testing.T) {
	t.Parallel()

	assert.True(t, guid.Zero.IsZero())

	a, b := guid.New(), guid.New()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestText(t *testing.T) {
	t.Parallel()

	g := guid.MustParse(globalVariable)

	text, err := g.MarshalText()
	require.NoError(t, err)

	var back guid.GUID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, g, back)

	require.Error(t, back.UnmarshalText([]byte("zzz")))
}
