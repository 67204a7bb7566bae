// Package dummy provides an in-memory implementation of the storage driver
// interface. It backs tests and the "memory" backend of knobctl.
package dummy

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tarantool/go-knobs/driver"
	"github.com/tarantool/go-knobs/kv"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
)

// Driver keeps all keys in a map guarded by a mutex.
type Driver struct {
	mu          sync.RWMutex
	storage     map[string]kv.KeyValue
	modRevision int64
	mutations   int
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// New returns an empty in-memory driver.
func New() *Driver {
	return &Driver{
		mu:          sync.RWMutex{},
		storage:     make(map[string]kv.KeyValue),
		modRevision: 1,
		mutations:   0,
	}
}

// Execute evaluates predicates and runs thenOps or elseOps atomically.
// Read-only transactions share the lock.
func (d *Driver) Execute(
	_ context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	if mutates(thenOps) || mutates(elseOps) {
		d.mu.Lock()
		defer d.mu.Unlock()
	} else {
		d.mu.RLock()
		defer d.mu.RUnlock()
	}

	ops := elseOps

	success := d.checkPredicates(predicates)
	if success {
		ops = thenOps
	}

	return tx.Response{
		Succeeded: success,
		Results:   d.executeOps(ops),
	}, nil
}

// Mutations returns the number of put and effective delete operations
// executed so far. Tests use it to assert that a pass wrote nothing.
func (d *Driver) Mutations() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.mutations
}

func mutates(ops []operation.Operation) bool {
	for _, op := range ops {
		if op.Type().Mutates() {
			return true
		}
	}

	return false
}

func isPrefix(str string) bool {
	return str == "" || str[len(str)-1] == '/'
}

func (d *Driver) revision(key string) int64 {
	val, ok := d.storage[key]
	if !ok {
		return 0
	}

	return val.ModRevision
}

// checkPredicates checks if the given predicates are satisfied by
// the current state of the storage.
func (d *Driver) checkPredicates(predicates []predicate.Predicate) bool {
	for _, pred := range predicates {
		if !d.checkPredicate(pred) {
			return false
		}
	}

	return true
}

func (d *Driver) checkPredicate(pred predicate.Predicate) bool {
	if !pred.Operation().ValidFor(pred.Target()) {
		return false
	}

	switch pred.Target() {
	case predicate.TargetVersion:
		version, ok := pred.Value().(int64)
		if !ok {
			return false
		}

		current := d.revision(string(pred.Key()))

		switch pred.Operation() {
		case predicate.OpEqual:
			return current == version
		case predicate.OpNotEqual:
			return current != version
		case predicate.OpGreater:
			return current > version
		case predicate.OpLess:
			return current < version
		default:
			return false
		}
	case predicate.TargetValue:
		value, ok := pred.Value().([]byte)
		if !ok {
			return false
		}

		val, exists := d.storage[string(pred.Key())]

		switch pred.Operation() { //nolint:exhaustive
		case predicate.OpEqual:
			return exists && bytes.Equal(val.Value, value)
		case predicate.OpNotEqual:
			return !exists || !bytes.Equal(val.Value, value)
		default:
			return false
		}
	default:
		return false
	}
}

func (d *Driver) getAllByPrefix(prefix string) []kv.KeyValue {
	var prefixValues []kv.KeyValue

	for k, v := range d.storage {
		if strings.HasPrefix(k, prefix) {
			prefixValues = append(prefixValues, v.Clone())
		}
	}

	sort.Slice(prefixValues, func(i, j int) bool {
		return bytes.Compare(prefixValues[i].Key, prefixValues[j].Key) < 0
	})

	return prefixValues
}

func (d *Driver) executeOps(ops []operation.Operation) []tx.RequestResponse {
	result := make([]tx.RequestResponse, 0, len(ops))
	mutable := false

	for _, eop := range ops {
		key := string(eop.Key())

		var values []kv.KeyValue

		switch eop.Type() {
		case operation.TypePut:
			d.storage[key] = kv.KeyValue{
				Key:         []byte(key),
				Value:       bytes.Clone(eop.Value()),
				ModRevision: d.modRevision,
			}
			d.mutations++
			mutable = true
		case operation.TypeDelete:
			if isPrefix(key) {
				values = d.getAllByPrefix(key)
			} else if val, ok := d.storage[key]; ok {
				values = []kv.KeyValue{val.Clone()}
			}

			for _, v := range values {
				delete(d.storage, string(v.Key))
				d.mutations++
				mutable = true
			}
		case operation.TypeGet:
			if isPrefix(key) {
				values = d.getAllByPrefix(key)
			} else if val, ok := d.storage[key]; ok {
				values = []kv.KeyValue{val.Clone()}
			}
		}

		result = append(result, tx.RequestResponse{Values: values})
	}

	if mutable {
		d.modRevision++
	}

	return result
}
