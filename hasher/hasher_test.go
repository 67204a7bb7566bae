package hasher_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/hasher"
)

func TestSHA256Hasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		out  string
	}{
		{"empty", []byte(""), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			h := hasher.NewSHA256Hasher()

			result, err := h.Hash(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.out, hex.EncodeToString(result))
			assert.Equal(t, "sha256", h.Name())
		})
	}
}

func TestCRC32Hasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		out  uint32
	}{
		{"empty", []byte{}, 0},
		{"check value", []byte("123456789"), 0xCBF43926},
		{"the quick brown fox", []byte("The quick brown fox jumps over the lazy dog"), 0x414FA339},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			h := hasher.NewCRC32Hasher()

			sum, err := hasher.Sum32(h, test.in)
			require.NoError(t, err)
			assert.Equal(t, test.out, sum)
		})
	}
}

func TestHasher_Stateless(t *testing.T) {
	t.Parallel()

	for _, h := range []hasher.Hasher{hasher.NewSHA256Hasher(), hasher.NewCRC32Hasher()} {
		first, err := h.Hash([]byte("abc"))
		require.NoError(t, err)

		second, err := h.Hash([]byte("abc"))
		require.NoError(t, err)

		assert.Equal(t, first, second, h.Name())
	}
}

func TestHasher_negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hasher hasher.Hasher
	}{
		{"sha256", hasher.NewSHA256Hasher()},
		{"crc32", hasher.NewCRC32Hasher()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := test.hasher.Hash(nil)
			require.ErrorIs(t, err, hasher.ErrDataIsNil)

			_, err = hasher.Sum32(test.hasher, nil)
			require.ErrorIs(t, err, hasher.ErrDataIsNil)
		})
	}
}
