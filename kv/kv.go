// Package kv provides the key-value pair type shared by the storage layers.
package kv

import (
	"bytes"
)

// KeyValue is one stored key with the revision of its last write.
type KeyValue struct {
	// Key is the full storage key, namer prefix included.
	Key []byte
	// Value is the encoded payload: a msgpack variable record or a volume section.
	Value []byte

	// ModRevision is the revision of the last write to Key, 0 if never written.
	ModRevision int64
}

// Clone returns a copy of k that shares no memory with it.
func (k KeyValue) Clone() KeyValue {
	return KeyValue{
		Key:         bytes.Clone(k.Key),
		Value:       bytes.Clone(k.Value),
		ModRevision: k.ModRevision,
	}
}
