package marshaller

import (
	"fmt"
)

// MarshalError represents an error when marshalling fails.
type MarshalError struct {
	format string
	parent error
}

func errMarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{format: format, parent: parent}
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal %s: %s", e.format, e.parent)
}

// UnmarshalError represents an error when unmarshalling fails.
type UnmarshalError struct {
	format string
	parent error
}

func errUnmarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{format: format, parent: parent}
}

// Unwrap returns the underlying error that caused the unmarshalling failure.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unmarshalling error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s: %s", e.format, e.parent)
}
