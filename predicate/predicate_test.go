package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-knobs/predicate"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	key := []byte("/knobs/var/guid/KNOB")

	tests := []struct {
		name   string
		pred   predicate.Predicate
		op     predicate.Op
		target predicate.Target
		value  any
	}{
		{"ValueEqual", predicate.ValueEqual(key, []byte("v")), predicate.OpEqual, predicate.TargetValue, []byte("v")},
		{"ValueNotEqual", predicate.ValueNotEqual(key, []byte("v")), predicate.OpNotEqual, predicate.TargetValue,
			[]byte("v")},
		{"VersionEqual", predicate.VersionEqual(key, 0), predicate.OpEqual, predicate.TargetVersion, int64(0)},
		{"VersionNotEqual", predicate.VersionNotEqual(key, 3), predicate.OpNotEqual, predicate.TargetVersion,
			int64(3)},
		{"VersionGreater", predicate.VersionGreater(key, 4), predicate.OpGreater, predicate.TargetVersion, int64(4)},
		{"VersionLess", predicate.VersionLess(key, 5), predicate.OpLess, predicate.TargetVersion, int64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, key, tt.pred.Key())
			assert.Equal(t, tt.op, tt.pred.Operation())
			assert.Equal(t, tt.target, tt.pred.Target())
			assert.Equal(t, tt.value, tt.pred.Value())
		})
	}
}

func TestOpString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Equal", predicate.OpEqual.String())
	assert.Equal(t, "NotEqual", predicate.OpNotEqual.String())
	assert.Equal(t, "Greater", predicate.OpGreater.String())
	assert.Equal(t, "Less", predicate.OpLess.String())
	assert.Equal(t, "Unknown", predicate.Op(42).String())
}

func TestTargetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Version", predicate.TargetVersion.String())
	assert.Equal(t, "Value", predicate.TargetValue.String())
	assert.Equal(t, "Unknown", predicate.Target(42).String())
}

func TestOpSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "==", predicate.OpEqual.Symbol())
	assert.Equal(t, "!=", predicate.OpNotEqual.Symbol())
	assert.Equal(t, ">", predicate.OpGreater.Symbol())
	assert.Equal(t, "<", predicate.OpLess.Symbol())
	assert.Empty(t, predicate.Op(42).Symbol())
}

func TestOpValidFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		op     predicate.Op
		target predicate.Target
		valid  bool
	}{
		{"equal value", predicate.OpEqual, predicate.TargetValue, true},
		{"not equal value", predicate.OpNotEqual, predicate.TargetValue, true},
		{"greater value", predicate.OpGreater, predicate.TargetValue, false},
		{"less value", predicate.OpLess, predicate.TargetValue, false},
		{"greater version", predicate.OpGreater, predicate.TargetVersion, true},
		{"less version", predicate.OpLess, predicate.TargetVersion, true},
		{"equal unknown target", predicate.OpEqual, predicate.Target(42), false},
		{"unknown op", predicate.Op(42), predicate.TargetVersion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.op.ValidFor(tt.target))
		})
	}
}

func TestTargetField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mod_revision", predicate.TargetVersion.Field())
	assert.Equal(t, "value", predicate.TargetValue.Field())
	assert.Empty(t, predicate.Target(42).Field())
}
