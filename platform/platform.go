// Package platform holds the services the boot-time engines call out to:
// system reset and event notification.
package platform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tarantool/go-knobs/guid"
)

// ResetType selects how the platform resets.
type ResetType int

const (
	// ResetCold power-cycles the platform.
	ResetCold ResetType = iota + 1
	// ResetWarm restarts without a power cycle.
	ResetWarm
	// ResetShutdown powers the platform off.
	ResetShutdown
)

func (t ResetType) String() string {
	switch t {
	case ResetCold:
		return "cold"
	case ResetWarm:
		return "warm"
	case ResetShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("ResetType(%d)", int(t))
	}
}

// ErrResetReturned is returned by engines when ResetSystem came back.
var ErrResetReturned = errors.New("system reset returned")

// Resetter resets the platform. A successful reset never returns; the subtype
// GUID tells later boot stages why the reset happened.
type Resetter interface {
	ResetSystem(ctx context.Context, kind ResetType, subtype guid.GUID)
}

// ResetFunc adapts a function to Resetter.
type ResetFunc func(ctx context.Context, kind ResetType, subtype guid.GUID)

// ResetSystem implements Resetter.
func (f ResetFunc) ResetSystem(ctx context.Context, kind ResetType, subtype guid.GUID) {
	f(ctx, kind, subtype)
}

// Reset is one recorded ResetSystem call.
type Reset struct {
	Type    ResetType
	Subtype guid.GUID
}

// RecordingResetter remembers reset requests and returns, so callers observe
// ErrResetReturned. It backs tests and dry runs.
type RecordingResetter struct {
	mu     sync.Mutex
	resets []Reset
}

// ResetSystem implements Resetter.
func (r *RecordingResetter) ResetSystem(_ context.Context, kind ResetType, subtype guid.GUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resets = append(r.resets, Reset{Type: kind, Subtype: subtype})
}

// Resets returns a copy of the recorded calls.
func (r *RecordingResetter) Resets() []Reset {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Reset(nil), r.resets...)
}
