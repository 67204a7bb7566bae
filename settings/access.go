// Package settings applies settings packets to persisted variables and dumps
// the current variables back into a packet.
package settings

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/tarantool/go-knobs/guid"
)

// Flags are reported back for each applied setting.
type Flags uint32

const (
	// FlagResetRequired means the new value takes effect after a reset.
	FlagResetRequired Flags = 1 << iota
	// FlagAlreadySet means the value was already current and nothing was written.
	FlagAlreadySet
)

func (f Flags) String() string {
	var names []string

	if f&FlagResetRequired != 0 {
		names = append(names, "ResetRequired")
	}

	if f&FlagAlreadySet != 0 {
		names = append(names, "AlreadySet")
	}

	if rest := f &^ (FlagResetRequired | FlagAlreadySet); rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(rest), 16))
	}

	if len(names) == 0 {
		return "0"
	}

	return strings.Join(names, "|")
}

// AuthToken identifies the caller of a managed setting write.
type AuthToken uint64

// NoAuthToken is used when no authentication was performed.
const NoAuthToken AuthToken = 0

var (
	// ErrRejectedHeader is returned when the packet header fails validation.
	ErrRejectedHeader = errors.New("settings packet header rejected")
	// ErrAccessDenied is returned by Access implementations for bad tokens.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnknownSetting is returned for Ids no provider handles.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrInvalidValue is returned for values that cannot be decoded or applied.
	ErrInvalidValue = errors.New("invalid setting value")
	// ErrResultsNotWritten is joined to the Apply error when the results
	// packet could not be written out.
	ErrResultsNotWritten = errors.New("results packet not written")
)

// Access is the indirection managed settings go through.
type Access interface {
	// Get returns the current value of setting id.
	Get(ctx context.Context, id string) ([]byte, error)
	// Set writes value to setting id on behalf of token.
	Set(ctx context.Context, id string, value []byte, token AuthToken) (Flags, error)
	// Resolve returns the Id of the setting backed by variable (name, g).
	Resolve(name string, g guid.GUID) (string, bool)
}
