// Package guid implements EFI GUIDs: 16-byte namespace identifiers whose
// binary layout stores the first three fields little-endian.
package guid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Size is the binary size of a GUID.
const Size = 16

// ErrInvalidLength is returned when a binary GUID is not exactly Size bytes.
var ErrInvalidLength = errors.New("guid must be 16 bytes")

// GUID holds the binary (on-flash) form of an EFI GUID.
type GUID [Size]byte

// Zero is the all-zero GUID.
var Zero GUID //nolint:gochecknoglobals

// swap converts between the RFC 4122 byte order and the EFI byte order.
// The conversion is its own inverse.
func swap(in [Size]byte) [Size]byte {
	out := in
	out[0], out[1], out[2], out[3] = in[3], in[2], in[1], in[0]
	out[4], out[5] = in[5], in[4]
	out[6], out[7] = in[7], in[6]

	return out
}

// Parse parses the textual registry form, e.g. "8BE4DF61-93CA-11D2-AA0D-00E098032B8C".
// Braced and urn:uuid: forms are accepted as well.
func Parse(s string) (GUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return Zero, fmt.Errorf("failed to parse guid %q: %w", s, err)
	}

	return GUID(swap(parsed)), nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for compiled-in identifiers.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return g
}

// FromBytes copies a GUID out of its 16-byte binary form.
func FromBytes(b []byte) (GUID, error) {
	if len(b) != Size {
		return Zero, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}

	var g GUID
	copy(g[:], b)

	return g, nil
}

// New returns a random GUID.
func New() GUID {
	return GUID(swap(uuid.New()))
}

// Bytes returns a fresh copy of the binary form.
func (g GUID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, g[:])

	return out
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g == Zero
}

// String returns the upper-case registry form.
func (g GUID) String() string {
	return strings.ToUpper(uuid.UUID(swap(g)).String())
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}
