package tkv

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-knobs/operation"
)

var (
	// ErrUnknownOperation is returned when the operation type has no txn counterpart.
	ErrUnknownOperation = errors.New("unknown operation")

	_ msgpack.CustomEncoder = tkvOperation{Operation: operation.Operation{}}

	//nolint: gochecknoglobals
	ops = map[operation.Type]string{
		operation.TypeGet:    "get",
		operation.TypePut:    "put",
		operation.TypeDelete: "delete",
	}
)

// EncodeError is returned when a request element could not be written to msgpack.
type EncodeError struct {
	Element string
	Text    string
	Err     error
}

// Error returns the error message.
func (e EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s, %s: %s", e.Element, e.Text, e.Err)
}

// Unwrap returns the underlying encoder error.
func (e EncodeError) Unwrap() error {
	return e.Err
}

type tkvOperation struct {
	operation.Operation
}

func newTKVOperations(operations []operation.Operation) []tkvOperation {
	tkvOperations := make([]tkvOperation, 0, len(operations))
	for _, o := range operations {
		tkvOperations = append(tkvOperations, tkvOperation{o})
	}

	return tkvOperations
}

// EncodeMsgpack writes the operation as [name, path] or [name, path, value] for puts.
// Paths and values are written as msgpack strings: the storage keeps raw bytes in string fields.
func (o tkvOperation) EncodeMsgpack(encoder *msgpack.Encoder) error {
	name, ok := ops[o.Type()]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownOperation, o.Type())
	}

	fields := []string{name, string(o.Key())}
	if o.Type() == operation.TypePut {
		fields = append(fields, string(o.Value()))
	}

	if err := encoder.EncodeArrayLen(len(fields)); err != nil {
		return EncodeError{Element: "operation", Text: "array length", Err: err}
	}

	for _, field := range fields {
		if err := encoder.EncodeString(field); err != nil {
			return EncodeError{Element: "operation", Text: name, Err: err}
		}
	}

	return nil
}
