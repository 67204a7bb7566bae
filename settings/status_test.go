package settings_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected settings.Status
	}{
		{nil, settings.StatusSuccess},
		{settings.ErrInvalidValue, settings.StatusInvalidParameter},
		{varlist.ErrInvalidArgument, settings.StatusInvalidParameter},
		{&varlist.BufferTooSmallError{Needed: 40, Got: 8}, settings.StatusBufferTooSmall},
		{fmt.Errorf("wrapped: %w", varlist.ErrCorruptData), settings.StatusCorruptData},
		{varlist.ErrOverflow, settings.StatusCorruptData},
		{variable.ErrNotFound, settings.StatusNotFound},
		{settings.ErrUnknownSetting, settings.StatusNotFound},
		{variable.ErrWriteProtected, settings.StatusWriteProtected},
		{settings.ErrAccessDenied, settings.StatusAccessDenied},
		{errors.New("disk on fire"), settings.StatusDeviceError},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, settings.StatusOf(tt.err))
		})
	}
}

func TestFlags_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", settings.Flags(0).String())
	assert.Equal(t, "ResetRequired", settings.FlagResetRequired.String())
	assert.Equal(t, "ResetRequired|AlreadySet", (settings.FlagResetRequired | settings.FlagAlreadySet).String())
	assert.Equal(t, "AlreadySet|0x8", (settings.FlagAlreadySet | 8).String())
}
