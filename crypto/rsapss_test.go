package crypto_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/crypto"
)

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return privateKey
}

func TestRSAPSS_SignVerify(t *testing.T) {
	t.Parallel()

	rsapss := crypto.NewRSAPSS(generateKey(t))
	data := []byte("abc")

	sig, err := rsapss.Sign(data)
	require.NoError(t, err, "Sign must be successful")
	require.NotEmpty(t, sig, "signature must be returned")

	require.NoError(t, rsapss.Verify(data, sig), "Verify must be successful")
	require.Error(t, rsapss.Verify([]byte("abd"), sig), "tampered data must not verify")
}

func TestRSAPSS_VerifierOnly(t *testing.T) {
	t.Parallel()

	privateKey := generateKey(t)

	sig, err := crypto.NewRSAPSS(privateKey).Sign([]byte("abc"))
	require.NoError(t, err)

	verifier := crypto.NewRSAPSSVerifier(&privateKey.PublicKey)
	require.NoError(t, verifier.Verify([]byte("abc"), sig))

	_, err = verifier.Sign([]byte("abc"))
	require.ErrorIs(t, err, crypto.ErrNoPrivateKey)
}

func TestRSAPSS_WithoutKeys(t *testing.T) {
	t.Parallel()

	rsapss := crypto.NewRSAPSS(nil)

	_, err := rsapss.Sign([]byte("abc"))
	require.ErrorIs(t, err, crypto.ErrNoPrivateKey)

	err = rsapss.Verify([]byte("abc"), []byte("sig"))
	require.ErrorIs(t, err, crypto.ErrNoPublicKey)
}

func TestRSAPSS_WrongKey(t *testing.T) {
	t.Parallel()

	sig, err := crypto.NewRSAPSS(generateKey(t)).Sign([]byte("abc"))
	require.NoError(t, err)

	err = crypto.NewRSAPSS(generateKey(t)).Verify([]byte("abc"), sig)
	require.ErrorContains(t, err, "failed to verify")
}

func TestRSAPSS_Name(t *testing.T) {
	t.Parallel()

	require.Equal(t, "RSASSA-PSS", crypto.NewRSAPSS(nil).Name())
}

func TestLoadKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	privateKey := generateKey(t)

	privPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(privPath, pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}), 0o600))

	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	pubPath := filepath.Join(dir, "key.pub")
	require.NoError(t, os.WriteFile(pubPath, pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	}), 0o600))

	loadedPriv, err := crypto.LoadPrivateKey(privPath)
	require.NoError(t, err)
	assert.True(t, privateKey.Equal(loadedPriv))

	loadedPub, err := crypto.LoadPublicKey(pubPath)
	require.NoError(t, err)
	assert.True(t, privateKey.PublicKey.Equal(loadedPub))

	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a key"), 0o600))

	_, err = crypto.LoadPublicKey(garbage)
	require.ErrorIs(t, err, crypto.ErrInvalidPEM)

	_, err = crypto.LoadPrivateKey(filepath.Join(dir, "missing.pem"))
	require.Error(t, err)
}
