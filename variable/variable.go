// Package variable models persisted firmware variables addressed by
// (Name, GUID) and the stores that keep them.
package variable

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tarantool/go-knobs/guid"
)

// Attributes is the storage flag bitmask of a variable.
type Attributes uint32

const (
	// NonVolatile variables survive a reset.
	NonVolatile Attributes = 0x1
	// BootServiceAccess variables are visible before the OS takes over.
	BootServiceAccess Attributes = 0x2
	// RuntimeAccess variables stay visible to the OS.
	RuntimeAccess Attributes = 0x4
	// AuthenticatedWriteAccess marks variables whose writes must be authenticated.
	AuthenticatedWriteAccess Attributes = 0x10
)

//nolint:gochecknoglobals
var attributeNames = []struct {
	bit  Attributes
	name string
}{
	{NonVolatile, "NV"},
	{BootServiceAccess, "BS"},
	{RuntimeAccess, "RT"},
	{AuthenticatedWriteAccess, "AW"},
}

// Names returns the short names of the known bits set in a.
func (a Attributes) Names() []string {
	var names []string

	for _, attr := range attributeNames {
		if a&attr.bit != 0 {
			names = append(names, attr.name)
		}
	}

	return names
}

// String formats a as "NV|BS"; unknown bits are appended in hex.
func (a Attributes) String() string {
	names := a.Names()

	known := Attributes(0)
	for _, attr := range attributeNames {
		known |= attr.bit
	}

	if rest := a &^ known; rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}

	if len(names) == 0 {
		return "0"
	}

	return strings.Join(names, "|")
}

// ParseAttributes accepts the String form, e.g. "NV|BS|0x40", or a single number.
func ParseAttributes(s string) (Attributes, error) {
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Attributes(n), nil
	}

	var out Attributes

next:
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)

		for _, attr := range attributeNames {
			if strings.EqualFold(part, attr.name) {
				out |= attr.bit
				continue next
			}
		}

		n, err := strconv.ParseUint(part, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("unknown attribute %q", part)
		}

		out |= Attributes(n)
	}

	return out, nil
}

var (
	// ErrNotFound is returned when no variable exists under (Name, GUID).
	ErrNotFound = errors.New("variable not found")
	// ErrAttributeMismatch is returned when Set changes the attributes of an existing variable.
	ErrAttributeMismatch = errors.New("attributes differ from the stored variable")
	// ErrWriteProtected is returned when a policy forbids the write.
	ErrWriteProtected = errors.New("variable is write protected")
	// ErrInvalidName is returned for empty names or names holding NUL.
	ErrInvalidName = errors.New("invalid variable name")
	// ErrConflict is returned when the variable changed between read and write.
	ErrConflict = errors.New("variable was modified concurrently")
)

// Variable is one persisted configuration knob.
type Variable struct {
	Name       string
	GUID       guid.GUID
	Attributes Attributes
	Data       []byte
}

// Size returns the data size.
func (v Variable) Size() int {
	return len(v.Data)
}

// Clone returns a copy that shares no memory with v.
func (v Variable) Clone() Variable {
	out := v
	out.Data = bytes.Clone(v.Data)

	return out
}

// Equal reports whether both variables have the same identity, attributes and data.
func (v Variable) Equal(other Variable) bool {
	return v.Name == other.Name &&
		v.GUID == other.GUID &&
		v.Attributes == other.Attributes &&
		bytes.Equal(v.Data, other.Data)
}

// String identifies the variable as "<GUID>:<Name>".
func (v Variable) String() string {
	return ID(v.Name, v.GUID)
}

// ID formats a (Name, GUID) pair as "<GUID>:<Name>".
func ID(name string, g guid.GUID) string {
	return g.String() + ":" + name
}

// ValidateName checks that name can be stored.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	default:
		return nil
	}
}

// Store is persisted variable storage with UEFI-like semantics.
type Store interface {
	// Get returns the variable stored under (name, g) or ErrNotFound.
	Get(ctx context.Context, name string, g guid.GUID) (Variable, error)
	// Set creates or replaces a variable. Empty Data deletes it.
	// Replacing a variable with different attributes fails with ErrAttributeMismatch.
	Set(ctx context.Context, v Variable) error
	// Delete removes the variable or returns ErrNotFound.
	Delete(ctx context.Context, name string, g guid.GUID) error
	// List returns every stored variable.
	List(ctx context.Context) ([]Variable, error)
}
