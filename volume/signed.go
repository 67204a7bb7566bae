package volume

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/crypto"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/hasher"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/namer"
	"github.com/tarantool/go-knobs/operation"
)

// DefaultPrefix is the key prefix of signed sections unless overridden.
const DefaultPrefix = "/knobs"

// ErrNoSigner is returned by Publish on a read-only Signed volume.
var ErrNoSigner = errors.New("signer is not configured")

// Signed is a volume kept in a knobs.Storage. Every section is stored with
// its digest and a signature of that digest, all three are checked on read.
type Signed struct {
	storage  knobs.Storage
	namer    namer.Namer
	hasher   hasher.Hasher
	verifier crypto.Verifier
	signer   crypto.Signer
}

// SignedOption configures a Signed volume.
type SignedOption = options.OptionCallback[Signed]

// WithSigner enables Publish.
func WithSigner(signer crypto.Signer) SignedOption {
	return func(s *Signed) {
		s.signer = signer
	}
}

// WithSectionNamer overrides the key layout.
func WithSectionNamer(n namer.Namer) SignedOption {
	return func(s *Signed) {
		s.namer = n
	}
}

// WithHasher overrides the digest algorithm, SHA-256 by default.
func WithHasher(h hasher.Hasher) SignedOption {
	return func(s *Signed) {
		s.hasher = h
	}
}

// NewSigned creates a signed volume verifying sections with verifier.
func NewSigned(storage knobs.Storage, verifier crypto.Verifier, opts ...SignedOption) *Signed {
	s := options.ApplyOptions(func() Signed {
		return Signed{
			storage:  storage,
			namer:    namer.NewDefaultNamer(DefaultPrefix),
			hasher:   hasher.NewSHA256Hasher(),
			verifier: verifier,
			signer:   nil,
		}
	}, opts)

	return &s
}

func (s *Signed) keys(g guid.GUID) []namer.Key {
	return s.namer.SectionKeys(g, s.hasher.Name(), s.verifier.Name())
}

// Publish stores blob as section g with its digest and signature.
func (s *Signed) Publish(ctx context.Context, g guid.GUID, blob []byte) error {
	if s.signer == nil {
		return ErrNoSigner
	}

	digest, err := s.hasher.Hash(blob)
	if err != nil {
		return fmt.Errorf("failed to hash section %s: %w", g, err)
	}

	signature, err := s.signer.Sign(digest)
	if err != nil {
		return fmt.Errorf("failed to sign section %s: %w", g, err)
	}

	ops := make([]operation.Operation, 0, 3) //nolint:mnd

	for _, key := range s.keys(g) {
		switch key.Type {
		case namer.KeyTypeValue:
			ops = append(ops, operation.Put(key.Raw, blob))
		case namer.KeyTypeHash:
			ops = append(ops, operation.Put(key.Raw, digest))
		case namer.KeyTypeSignature:
			ops = append(ops, operation.Put(key.Raw, signature))
		case namer.KeyTypeVariable:
		}
	}

	if _, err := s.storage.Tx(ctx).Then(ops...).Commit(); err != nil {
		return fmt.Errorf("failed to publish section %s: %w", g, err)
	}

	return nil
}

// Section implements Source.
func (s *Signed) Section(ctx context.Context, g guid.GUID) ([]byte, error) {
	keys := s.keys(g)

	ops := make([]operation.Operation, 0, len(keys))
	for _, key := range keys {
		ops = append(ops, operation.Get(key.Raw))
	}

	resp, err := s.storage.Tx(ctx).Then(ops...).Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to read section %s: %w", g, err)
	}

	var blob, digest, signature []byte

	for i, result := range resp.Results {
		if i >= len(keys) || len(result.Values) == 0 {
			continue
		}

		switch keys[i].Type {
		case namer.KeyTypeValue:
			blob = result.Values[0].Value
		case namer.KeyTypeHash:
			digest = result.Values[0].Value
		case namer.KeyTypeSignature:
			signature = result.Values[0].Value
		case namer.KeyTypeVariable:
		}
	}

	switch {
	case blob == nil:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, g)
	case digest == nil || signature == nil:
		return nil, fmt.Errorf("%w: %s: missing hash or signature", ErrVerification, g)
	}

	if err := s.verifier.Verify(digest, signature); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrVerification, g, err)
	}

	computed, err := s.hasher.Hash(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to hash section %s: %w", g, err)
	}

	if !bytes.Equal(computed, digest) {
		return nil, fmt.Errorf("%w: %s: hash mismatch", ErrVerification, g)
	}

	return blob, nil
}

// Sections implements Lister.
func (s *Signed) Sections(ctx context.Context) ([]guid.GUID, error) {
	values, err := s.storage.Range(ctx, knobs.WithPrefix(string(s.namer.SectionPrefix())))
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	out := make([]guid.GUID, 0, len(values))

	for _, value := range values {
		key, err := s.namer.ParseKey(value.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to list sections: %w", err)
		}

		out = append(out, key.GUID)
	}

	return out, nil
}
