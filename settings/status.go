package settings

import (
	"errors"

	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

// Status is the result text reported for one setting.
type Status string

const (
	StatusSuccess          Status = "Success"
	StatusInvalidParameter Status = "InvalidParameter"
	StatusBufferTooSmall   Status = "BufferTooSmall"
	StatusCorruptData      Status = "CorruptData"
	StatusNotFound         Status = "NotFound"
	StatusWriteProtected   Status = "WriteProtected"
	StatusAccessDenied     Status = "AccessDenied"
	StatusDeviceError      Status = "DeviceError"
)

//nolint:gochecknoglobals
var statusOf = []struct {
	err    error
	status Status
}{
	{ErrAccessDenied, StatusAccessDenied},
	{variable.ErrWriteProtected, StatusWriteProtected},
	{varlist.ErrBufferTooSmall, StatusBufferTooSmall},
	{varlist.ErrCorruptData, StatusCorruptData},
	{varlist.ErrOverflow, StatusCorruptData},
	{ErrUnknownSetting, StatusNotFound},
	{variable.ErrNotFound, StatusNotFound},
	{ErrInvalidValue, StatusInvalidParameter},
	{varlist.ErrInvalidArgument, StatusInvalidParameter},
	{variable.ErrInvalidName, StatusInvalidParameter},
}

// StatusOf maps an error to its status text. Unknown errors are device errors.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	for _, s := range statusOf {
		if errors.Is(err, s.err) {
			return s.status
		}
	}

	return StatusDeviceError
}
