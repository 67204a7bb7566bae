package varlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a variable cannot be encoded as given.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBufferTooSmall is matched by every *BufferTooSmallError.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrCorruptData is returned when a record fails its integrity checks.
	ErrCorruptData = errors.New("corrupt record")
	// ErrOverflow is returned when the record size does not fit in 32 bits.
	ErrOverflow = errors.New("record size overflows uint32")
)

// BufferTooSmallError reports the buffer size an operation needs.
type BufferTooSmallError struct {
	Needed uint32
	Got    int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer too small: need %d bytes, got %d", e.Needed, e.Got)
}

// Is makes BufferTooSmallError match ErrBufferTooSmall.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall //nolint:errorlint
}

func errBufferTooSmall(needed uint32, got int) error {
	return &BufferTooSmallError{Needed: needed, Got: got}
}
