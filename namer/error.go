package namer

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is matched by every InvalidKeyError.
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError represents an error for invalid key format.
type InvalidKeyError struct {
	Key     string
	Problem string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key '%s': %s", e.Key, e.Problem)
}

// Is makes InvalidKeyError match ErrInvalidKey.
func (e InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey //nolint:errorlint
}

func errInvalidKey(key string, problem string) error {
	return InvalidKeyError{
		Key:     key,
		Problem: problem,
	}
}
