// Package driver defines the interface for storage driver implementations.
// It provides a common interface for the in-memory, etcd and Tarantool backends.
package driver

import (
	"context"

	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
)

// Driver is the interface that storage drivers must implement.
type Driver interface {
	// Execute executes a transactional operation with conditional logic.
	// The transaction will execute thenOps if all predicates evaluate to true,
	// otherwise it will execute elseOps.
	Execute(
		ctx context.Context,
		predicates []predicate.Predicate,
		thenOps []operation.Operation,
		elseOps []operation.Operation,
	) (tx.Response, error)
}
