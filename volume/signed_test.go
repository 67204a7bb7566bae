package volume_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/crypto"
	"github.com/tarantool/go-knobs/driver/dummy"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/namer"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/volume"
)

func newSigned(t *testing.T) (*volume.Signed, knobs.Storage, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	storage := knobs.NewStorage(dummy.New())
	signer := crypto.NewRSAPSS(key)

	return volume.NewSigned(storage, signer, volume.WithSigner(signer)), storage, key
}

func TestSigned_PublishSection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vol, storage, key := newSigned(t)

	require.NoError(t, vol.Publish(ctx, profileA, []byte("profile-a")))
	require.NoError(t, vol.Publish(ctx, profileB, []byte("profile-b")))

	blob, err := vol.Section(ctx, profileA)
	require.NoError(t, err)
	assert.Equal(t, []byte("profile-a"), blob)

	reader := volume.NewSigned(storage, crypto.NewRSAPSSVerifier(&key.PublicKey))

	blob, err = reader.Section(ctx, profileB)
	require.NoError(t, err)
	assert.Equal(t, []byte("profile-b"), blob)

	sections, err := reader.Sections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []guid.GUID{profileA, profileB}, sections)

	_, err = reader.Section(ctx, guid.New())
	require.ErrorIs(t, err, volume.ErrNotFound)

	require.ErrorIs(t, reader.Publish(ctx, profileA, []byte("x")), volume.ErrNoSigner)
}

func TestSigned_Tampered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	keys := namer.NewDefaultNamer(volume.DefaultPrefix).SectionKeys(profileA, "sha256", "RSASSA-PSS")

	tests := []struct {
		name   string
		tamper operation.Operation
	}{
		{"value", operation.Put(keys[0].Raw, []byte("evil"))},
		{"hash", operation.Put(keys[1].Raw, []byte("0123456789abcdef0123456789abcdef"))},
		{"signature", operation.Put(keys[2].Raw, []byte("forged"))},
		{"missing signature", operation.Delete(keys[2].Raw)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			vol, storage, _ := newSigned(t)
			require.NoError(t, vol.Publish(ctx, profileA, []byte("profile-a")))

			_, err := storage.Tx(ctx).Then(test.tamper).Commit()
			require.NoError(t, err)

			_, err = vol.Section(ctx, profileA)
			require.ErrorIs(t, err, volume.ErrVerification)
		})
	}
}

func TestSigned_OtherKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vol, storage, _ := newSigned(t)
	require.NoError(t, vol.Publish(ctx, profileA, []byte("profile-a")))

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = volume.NewSigned(storage, crypto.NewRSAPSSVerifier(&other.PublicKey)).Section(ctx, profileA)
	require.ErrorIs(t, err, volume.ErrVerification)
}
