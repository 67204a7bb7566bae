package tkv

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-knobs/predicate"
)

var (
	// ErrUnknownOperator is returned when the operator is unknown.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUnknownTarget is returned when the target is unknown.
	ErrUnknownTarget = errors.New("unknown target")

	_ msgpack.CustomEncoder = tkvPredicate{Predicate: nil}
)

type tkvPredicate struct {
	predicate.Predicate
}

func newTKVPredicates(predicates []predicate.Predicate) []tkvPredicate {
	tkvPredicates := make([]tkvPredicate, 0, len(predicates))
	for _, p := range predicates {
		tkvPredicates = append(tkvPredicates, tkvPredicate{p})
	}

	return tkvPredicates
}

const predicateArrayLen = 4

// EncodeMsgpack writes the predicate as [target, operator, value, path].
func (p tkvPredicate) EncodeMsgpack(encoder *msgpack.Encoder) error {
	operator := p.Operation().Symbol()
	if operator == "" {
		return fmt.Errorf("%w: %v", ErrUnknownOperator, p.Operation())
	}

	target := p.Target().Field()
	if target == "" {
		return fmt.Errorf("%w: %v", ErrUnknownTarget, p.Target())
	}

	if !p.Operation().ValidFor(p.Target()) {
		return fmt.Errorf("%w: %v on %v", ErrUnknownOperator, p.Operation(), p.Target())
	}

	if err := encoder.EncodeArrayLen(predicateArrayLen); err != nil {
		return EncodeError{Element: "predicate", Text: "array length", Err: err}
	}

	if err := encoder.EncodeString(target); err != nil {
		return EncodeError{Element: "predicate", Text: "target", Err: err}
	}

	if err := encoder.EncodeString(operator); err != nil {
		return EncodeError{Element: "predicate", Text: "operator", Err: err}
	}

	var err error

	// Value comparisons are string comparisons on the storage side.
	if raw, isBytes := p.Value().([]byte); isBytes {
		err = encoder.EncodeString(string(raw))
	} else {
		err = encoder.Encode(p.Value())
	}

	if err != nil {
		return EncodeError{Element: "predicate", Text: "value", Err: err}
	}

	if err := encoder.EncodeString(string(p.Key())); err != nil {
		return EncodeError{Element: "predicate", Text: "path", Err: err}
	}

	return nil
}
