// Package operation provides types for storage operations.
// It defines operation types used in transactional contexts.
package operation

import "bytes"

// Operation represents a storage operation to be executed within a transaction.
type Operation struct {
	typ   Type
	key   []byte
	value []byte
}

// Get creates an operation that reads a key.
// A key ending with "/" reads every key under that prefix.
func Get(key []byte) Operation {
	return Operation{typ: TypeGet, key: key, value: nil}
}

// Put creates an operation that writes value under key.
func Put(key []byte, value []byte) Operation {
	return Operation{typ: TypePut, key: key, value: value}
}

// Delete creates an operation that removes a key.
// A key ending with "/" removes every key under that prefix.
func Delete(key []byte) Operation {
	return Operation{typ: TypeDelete, key: key, value: nil}
}

// Type returns the operation type.
func (o Operation) Type() Type {
	return o.typ
}

// Key returns the target key.
func (o Operation) Key() []byte {
	return o.key
}

// Value returns the data for put operations, nil otherwise.
func (o Operation) Value() []byte {
	return o.value
}

// IsPrefix reports whether the operation addresses a whole key prefix.
func (o Operation) IsPrefix() bool {
	return len(o.key) == 0 || bytes.HasSuffix(o.key, []byte("/"))
}
