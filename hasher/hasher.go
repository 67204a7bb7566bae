// Package hasher provides types and interfaces for hash calculating.
package hasher

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

// Hasher is the interface that hashers must implement.
// Hash is stateless: every call digests only the passed data.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type stdHasher struct {
	name    string
	newHash func() hash.Hash
}

// NewSHA256Hasher creates a hasher producing SHA-256 digests.
func NewSHA256Hasher() Hasher {
	return stdHasher{name: "sha256", newHash: sha256.New}
}

// NewCRC32Hasher creates a hasher producing IEEE CRC-32 checksums.
// The 4-byte result is big-endian, use Sum32 to get the integer form.
func NewCRC32Hasher() Hasher {
	return stdHasher{name: "crc32", newHash: func() hash.Hash { return crc32.NewIEEE() }}
}

// Name implements Hasher interface.
func (h stdHasher) Name() string {
	return h.name
}

// Hash implements Hasher interface.
func (h stdHasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	digest := h.newHash()

	n, err := digest.Write(data)
	if n < len(data) || err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	return digest.Sum(nil), nil
}

// Sum32 runs hasher over data and returns the first four bytes of the digest
// as a big-endian integer. For a CRC-32 hasher that is the checksum itself.
func Sum32(h Hasher, data []byte) (uint32, error) {
	digest, err := h.Hash(data)
	if err != nil {
		return 0, err
	}

	if len(digest) < 4 { //nolint:mnd
		return 0, fmt.Errorf("%s digest is too short: %d bytes", h.Name(), len(digest))
	}

	return binary.BigEndian.Uint32(digest), nil
}
