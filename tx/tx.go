// Package tx provides transactional interfaces for atomic storage operations.
// It supports conditional execution with predicates.
package tx

import (
	"github.com/tarantool/go-knobs/kv"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
)

// Tx represents a transactional interface for atomic operations.
type Tx interface {
	// If specifies predicates for conditional transaction execution.
	// Empty predicate list means always true (unconditional execution).
	If(predicates ...predicate.Predicate) Tx
	// Then specifies operations to execute if predicates evaluate to true.
	Then(operations ...operation.Operation) Tx
	// Else specifies operations to execute if predicates evaluate to false.
	Else(operations ...operation.Operation) Tx
	// Commit atomically executes the transaction and returns the result.
	Commit() (Response, error)
}

// Response contains the result of a transaction execution.
type Response struct {
	// Succeeded indicates whether the transaction predicates evaluated to true.
	Succeeded bool
	// Results contains the responses for each operation in Then/Else blocks.
	Results []RequestResponse
}

// RequestResponse represents the response for an individual transaction operation.
type RequestResponse struct {
	// Values contains the result data for Get operations and the previous
	// values for Delete operations.
	Values []kv.KeyValue
}
