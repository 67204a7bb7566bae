package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/tarantool/go-knobs/hasher"
)

var (
	// ErrNoPrivateKey is returned by Sign on a verify-only RSAPSS.
	ErrNoPrivateKey = errors.New("private key is not set")
	// ErrNoPublicKey is returned by Verify when no public key is known.
	ErrNoPublicKey = errors.New("public key is not set")
	// ErrInvalidPEM is returned when a key file holds no usable PEM block.
	ErrInvalidPEM = errors.New("invalid PEM data")
)

// RSAPSS represents RSA PSS algo for signing/verification
// (with SHA256 as digest calculation function).
type RSAPSS struct {
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey
	hasher     hasher.Hasher
}

var _ SignerVerifier = RSAPSS{} //nolint:exhaustruct

// NewRSAPSS creates an RSAPSS able to both sign and verify.
func NewRSAPSS(privKey *rsa.PrivateKey) RSAPSS {
	r := RSAPSS{privateKey: privKey, hasher: hasher.NewSHA256Hasher()} //nolint:exhaustruct
	if privKey != nil {
		r.publicKey = &privKey.PublicKey
	}

	return r
}

// NewRSAPSSVerifier creates a verify-only RSAPSS, as used on the boot side.
func NewRSAPSSVerifier(pubKey *rsa.PublicKey) RSAPSS {
	return RSAPSS{publicKey: pubKey, hasher: hasher.NewSHA256Hasher()} //nolint:exhaustruct
}

// Name implements SignerVerifier interface.
func (r RSAPSS) Name() string {
	return "RSASSA-PSS"
}

func (r RSAPSS) options() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       crypto.SHA256,
	}
}

// Sign generates SHA-256 digest and signs it using RSASSA-PSS.
func (r RSAPSS) Sign(data []byte) ([]byte, error) {
	if r.privateKey == nil {
		return nil, ErrNoPrivateKey
	}

	digest, err := r.hasher.Hash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to get hash: %w", err)
	}

	signature, err := rsa.SignPSS(rand.Reader, r.privateKey, crypto.SHA256, digest, r.options())
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	return signature, nil
}

// Verify compares data with signature.
func (r RSAPSS) Verify(data []byte, signature []byte) error {
	if r.publicKey == nil {
		return ErrNoPublicKey
	}

	digest, err := r.hasher.Hash(data)
	if err != nil {
		return fmt.Errorf("failed to get hash: %w", err)
	}

	err = rsa.VerifyPSS(r.publicKey, crypto.SHA256, digest, signature, r.options())
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	return nil
}

// LoadPrivateKey reads a PKCS#1 or PKCS#8 RSA private key from a PEM file.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	block, err := readPEM(path)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %q: %w", path, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an RSA key", ErrInvalidPEM, path)
	}

	return key, nil
}

// LoadPublicKey reads a PKIX or PKCS#1 RSA public key from a PEM file.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	block, err := readPEM(path)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key %q: %w", path, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an RSA key", ErrInvalidPEM, path)
	}

	return key, nil
}

func readPEM(path string) (*pem.Block, error) {
	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPEM, path)
	}

	return block, nil
}
