package marshaller

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// TypedYamlMarshaller is a generic YAML marshaller for typed objects.
type TypedYamlMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Format implements TypedMarshaller.
func (m TypedYamlMarshaller[T]) Format() string {
	return "yaml"
}

// Marshal serializes the typed data to YAML format.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return nil, errMarshal(m.Format(), err)
	}

	return marshalled, nil
}

// Unmarshal deserializes YAML data into a typed object.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := yaml.Unmarshal(data, &out)
	if err != nil {
		var zero T
		return zero, errUnmarshal(m.Format(), err)
	}

	return out, nil
}

// TypedMsgpackMarshaller is a generic msgpack marshaller for typed objects.
// It is the storage format of persisted variables.
type TypedMsgpackMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedMsgpackMarshaller[struct{}]{}

// NewTypedMsgpackMarshaller creates a new TypedMsgpackMarshaller for the specified type.
func NewTypedMsgpackMarshaller[T any]() TypedMsgpackMarshaller[T] {
	return TypedMsgpackMarshaller[T]{}
}

// Format implements TypedMarshaller.
func (m TypedMsgpackMarshaller[T]) Format() string {
	return "msgpack"
}

// Marshal serializes the typed data to msgpack.
func (m TypedMsgpackMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := msgpack.Marshal(data)
	if err != nil {
		return nil, errMarshal(m.Format(), err)
	}

	return marshalled, nil
}

// Unmarshal deserializes msgpack data into a typed object.
func (m TypedMsgpackMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := msgpack.Unmarshal(data, &out)
	if err != nil {
		var zero T
		return zero, errUnmarshal(m.Format(), err)
	}

	return out, nil
}
