// Package profile parses profile blobs: var-list records stored back to
// back with no count. Parsing is strict, the first bad record fails the
// whole blob and nothing parsed before it is returned.
package profile

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

// ErrNotFound is returned by FindByName when no record carries the name.
var ErrNotFound = errors.New("profile entry not found")

// RecordError locates a record that failed to decode.
type RecordError struct {
	Index  int
	Offset int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d at offset %d: %s", e.Index, e.Offset, e.Err)
}

// Unwrap returns the codec error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// walk decodes records in order and stops when fn returns false.
func walk(blob []byte, fn func(v variable.Variable) bool) error {
	for index, offset := 0, 0; offset < len(blob); index++ {
		v, consumed, err := varlist.Decode(blob[offset:])
		if err != nil {
			return &RecordError{Index: index, Offset: offset, Err: err}
		}

		if !fn(v) {
			return nil
		}

		offset += consumed
	}

	return nil
}

// ParseAll decodes every record of blob. An empty blob yields no entries.
func ParseAll(blob []byte) ([]variable.Variable, error) {
	var entries []variable.Variable

	err := walk(blob, func(v variable.Variable) bool {
		entries = append(entries, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindByName returns the first record whose name equals name exactly.
// Records after the match are not inspected.
func FindByName(blob []byte, name string) (variable.Variable, error) {
	var (
		found variable.Variable
		ok    bool
	)

	err := walk(blob, func(v variable.Variable) bool {
		if v.Name == name {
			found, ok = v, true
		}

		return !ok
	})

	switch {
	case err != nil:
		return variable.Variable{}, err
	case !ok:
		return variable.Variable{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	default:
		return found, nil
	}
}
