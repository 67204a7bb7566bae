// Package tkv provides a Tarantool storage driver implementation.
// Variables and volume sections are kept in a Tarantool config storage
// and every transaction is a single call to its txn function.
package tkv

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarantool/go-tarantool/v2"

	"github.com/tarantool/go-knobs/driver"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
)

// DefaultTxnFunction is the stored function invoked for every transaction.
const DefaultTxnFunction = "config.storage.txn"

// Driver is a Tarantool implementation of the storage driver interface.
type Driver struct {
	conn     tarantool.Doer
	function string
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct

	// ErrUnexpectedResponse is returned when the response from tarantool has unexpected format.
	ErrUnexpectedResponse = errors.New("unexpected response from tarantool")
)

// Option configures a Driver.
type Option = options.OptionCallback[Driver]

// WithTxnFunction overrides the stored function name used for transactions.
func WithTxnFunction(name string) Option {
	return func(d *Driver) {
		d.function = name
	}
}

// New creates a new Tarantool driver on top of an established connection.
// tarantool.Connection and pool.ConnectionAdapter both satisfy tarantool.Doer.
func New(doer tarantool.Doer, opts ...Option) *Driver {
	d := options.ApplyOptions(func() Driver {
		return Driver{conn: doer, function: DefaultTxnFunction}
	}, opts)

	return &d
}

// Execute executes a transactional operation with conditional logic.
func (d Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	req := tarantool.NewCallRequest(d.function).
		Args([]any{newTxnRequest(predicates, thenOps, elseOps)}).
		Context(ctx)

	var result []txnResponse

	switch err := d.conn.Do(req).GetTyped(&result); {
	case err != nil:
		return tx.Response{}, fmt.Errorf("failed to execute transaction: %w", err)
	case len(result) != 1:
		return tx.Response{}, fmt.Errorf("%w: expected 1 response, got %d", ErrUnexpectedResponse, len(result))
	}

	return result[0].asTxnResponse(), nil
}
