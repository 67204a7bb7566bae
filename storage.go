package knobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-knobs/driver"
	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/kv"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	txPkg "github.com/tarantool/go-knobs/tx"
)

// ErrInvalidPrefix is returned by Range when the prefix does not end with "/".
var ErrInvalidPrefix = errors.New("range prefix must end with '/'")

// rangeOptions contains configuration options for range operations.
type rangeOptions struct {
	Prefix string // Prefix filter for range queries.
	Limit  int    // Maximum number of results to return, 0 means unlimited.
}

// WithPrefix configures a range operation to filter keys by the specified prefix.
func WithPrefix(prefix string) options.OptionCallback[rangeOptions] {
	return func(opts *rangeOptions) {
		opts.Prefix = prefix
	}
}

// WithLimit configures a range operation to limit the number of results returned.
func WithLimit(limit int) options.OptionCallback[rangeOptions] {
	return func(opts *rangeOptions) {
		opts.Limit = limit
	}
}

func defaultRangeOptions() rangeOptions {
	return rangeOptions{Prefix: "/", Limit: 0}
}

// Storage is the main interface for key-value storage operations.
type Storage interface {
	// Tx creates a new transaction.
	// The context manages timeouts and cancellation for the transaction.
	Tx(ctx context.Context) txPkg.Tx

	// Range queries keys under a prefix, sorted by key.
	// Options:
	//   - WithPrefix: filter keys by prefix (default "/")
	//   - WithLimit: limit the number of results returned
	Range(ctx context.Context, opts ...options.OptionCallback[rangeOptions]) ([]kv.KeyValue, error)
}

// storage is the concrete implementation of the Storage interface.
type storage struct {
	driver driver.Driver
}

// NewStorage creates a new Storage instance with the specified driver.
func NewStorage(driver driver.Driver) Storage {
	return &storage{
		driver: driver,
	}
}

// Tx implements the Storage interface for transaction creation.
func (s storage) Tx(ctx context.Context) txPkg.Tx {
	return newTx(ctx, s.driver)
}

// Range implements the Storage interface for range queries.
func (s storage) Range(ctx context.Context, opts ...options.OptionCallback[rangeOptions]) ([]kv.KeyValue, error) {
	ropts := options.ApplyOptions(defaultRangeOptions, opts)

	if !operation.Get([]byte(ropts.Prefix)).IsPrefix() {
		return nil, ErrInvalidPrefix
	}

	resp, err := s.Tx(ctx).Then(operation.Get([]byte(ropts.Prefix))).Commit()
	if err != nil {
		return nil, fmt.Errorf("range failed: %w", err)
	}

	var out []kv.KeyValue
	for _, r := range resp.Results {
		out = append(out, r.Values...)
	}

	if ropts.Limit > 0 && len(out) > ropts.Limit {
		out = out[:ropts.Limit]
	}

	return out, nil
}

// tx is the internal implementation of the Tx interface.
type tx struct {
	driver driver.Driver
	ctx    context.Context //nolint:containedctx // Context is stored for transaction execution

	predicates option.Generic[[]predicate.Predicate]
	thenOps    option.Generic[[]operation.Operation]
	elseOps    option.Generic[[]operation.Operation]
}

// newTx creates a new transaction builder with the given driver and context.
func newTx(ctx context.Context, driver driver.Driver) txPkg.Tx {
	return &tx{
		driver:     driver,
		ctx:        ctx,
		predicates: option.None[[]predicate.Predicate](),
		thenOps:    option.None[[]operation.Operation](),
		elseOps:    option.None[[]operation.Operation](),
	}
}

// If adds predicates to the transaction condition.
// If should be called before Then/Else.
func (tb *tx) If(predicates ...predicate.Predicate) txPkg.Tx {
	if tb.predicates.IsSome() {
		panic("predicates are already set")
	} else if tb.thenOps.IsSome() || tb.elseOps.IsSome() {
		panic("If can only be called before Then/Else")
	}

	tb.predicates = option.Some(predicates)

	return tb
}

// Then adds operations to execute if predicates evaluate to true.
// Then can only be called before Else.
func (tb *tx) Then(operations ...operation.Operation) txPkg.Tx {
	if tb.thenOps.IsSome() {
		panic("then operations are already set")
	} else if tb.elseOps.IsSome() {
		panic("Then can only be called before Else")
	}

	tb.thenOps = option.Some(operations)

	return tb
}

// Else adds operations to execute if predicates evaluate to false.
func (tb *tx) Else(operations ...operation.Operation) txPkg.Tx {
	if tb.elseOps.IsSome() {
		panic("else operations are already set")
	}

	tb.elseOps = option.Some(operations)

	return tb
}

// Commit executes the transaction by delegating to the driver.
func (tb *tx) Commit() (txPkg.Response, error) {
	resp, err := tb.driver.Execute(
		tb.ctx,
		tb.predicates.UnwrapOr(nil),
		tb.thenOps.UnwrapOr(nil),
		tb.elseOps.UnwrapOr(nil),
	)
	if err != nil {
		return txPkg.Response{}, fmt.Errorf("tx execute failed: %w", err)
	}

	return resp, nil
}
