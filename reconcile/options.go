package reconcile

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/options"
)

//nolint:gochecknoglobals
var (
	// GenericProfile is the profile used whenever the claimed one cannot be trusted.
	GenericProfile = guid.MustParse("F6B9A5B4-7A5E-4C3E-9E0A-0C5D6B3A1E01")
	// CacheNamespace is the GUID of the cached active-profile variable.
	CacheNamespace = guid.MustParse("1C3E7F1A-2B94-4C55-A8D0-7E7C1F0B8A22")
	// ResetSubtype tags resets issued after a profile correction.
	ResetSubtype = guid.MustParse("9D2B3C4E-6F70-4A81-B2C3-D4E5F6071829")
)

// CacheVariableName is the name of the cached active-profile variable.
const CacheVariableName = "ConfProfileCache"

type engineOptions struct {
	allowList     []guid.GUID
	generic       guid.GUID
	manufacturing func(ctx context.Context) bool
	logger        logrus.FieldLogger
	cacheName     string
	cacheGUID     guid.GUID
	resetSubtype  guid.GUID
}

func defaultOptions() engineOptions {
	return engineOptions{
		allowList:     nil,
		generic:       GenericProfile,
		manufacturing: func(context.Context) bool { return false },
		logger:        logrus.StandardLogger(),
		cacheName:     CacheVariableName,
		cacheGUID:     CacheNamespace,
		resetSubtype:  ResetSubtype,
	}
}

// Option configures an Engine.
type Option = options.OptionCallback[engineOptions]

// WithAllowList sets the profiles a selector may choose from.
// An empty list makes every claim fall back to the generic profile.
func WithAllowList(profiles ...guid.GUID) Option {
	return func(o *engineOptions) {
		o.allowList = append([]guid.GUID(nil), profiles...)
	}
}

// WithGenericProfile overrides the fallback profile.
func WithGenericProfile(g guid.GUID) Option {
	return func(o *engineOptions) {
		o.generic = g
	}
}

// WithManufacturingCheck sets the check for manufacturing mode, in which
// persisted storage is trusted as is.
func WithManufacturingCheck(check func(ctx context.Context) bool) Option {
	return func(o *engineOptions) {
		if check != nil {
			o.manufacturing = check
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCacheVariable overrides the identity of the cached active-profile variable.
func WithCacheVariable(name string, namespace guid.GUID) Option {
	return func(o *engineOptions) {
		o.cacheName = name
		o.cacheGUID = namespace
	}
}

// WithResetSubtype overrides the reset subtype GUID.
func WithResetSubtype(g guid.GUID) Option {
	return func(o *engineOptions) {
		o.resetSubtype = g
	}
}
