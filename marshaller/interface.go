// Package marshaller provides typed serialization used for stored variable
// records and operator-facing output.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	// Format names the encoding, e.g. "yaml" or "msgpack".
	Format() string
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}
