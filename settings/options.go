package settings

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
)

// DefaultManagedPrefix is the Id prefix of settings routed through Access.
const DefaultManagedPrefix = "Device.ConfigData."

// FloorVariableName is the name of the variable holding the anti-rollback floor.
const FloorVariableName = "SettingsLSV"

//nolint:gochecknoglobals
var (
	// FloorNamespace is the GUID of the anti-rollback floor variable.
	FloorNamespace = guid.MustParse("3E8A4C2F-91B7-4D06-8F15-6A2C9B0E7D44")
	// ResetSubtype tags resets issued after a packet was applied.
	ResetSubtype = guid.MustParse("D6B2A7E1-3C58-4F9A-B04E-1E7F2C8D5A93")
)

type engineOptions struct {
	logger        logrus.FieldLogger
	managedPrefix string
	floorName     string
	floorGUID     guid.GUID
	resetSubtype  guid.GUID
	now           func() time.Time
}

func defaultOptions() engineOptions {
	return engineOptions{
		logger:        logrus.StandardLogger(),
		managedPrefix: DefaultManagedPrefix,
		floorName:     FloorVariableName,
		floorGUID:     FloorNamespace,
		resetSubtype:  ResetSubtype,
		now:           time.Now,
	}
}

// Option configures an Engine.
type Option = options.OptionCallback[engineOptions]

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithManagedPrefix overrides the Id prefix routed through Access.
func WithManagedPrefix(prefix string) Option {
	return func(o *engineOptions) {
		o.managedPrefix = prefix
	}
}

// WithFloorVariable overrides the identity of the anti-rollback floor variable.
func WithFloorVariable(name string, namespace guid.GUID) Option {
	return func(o *engineOptions) {
		o.floorName = name
		o.floorGUID = namespace
	}
}

// WithResetSubtype overrides the reset subtype GUID.
func WithResetSubtype(g guid.GUID) Option {
	return func(o *engineOptions) {
		o.resetSubtype = g
	}
}

// WithClock sets the time source used for CreatedOn.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.now = now
		}
	}
}
