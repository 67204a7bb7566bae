package platform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/platform"
)

func TestRecordingResetter(t *testing.T) {
	t.Parallel()

	subtype := guid.New()
	resetter := &platform.RecordingResetter{}

	assert.Empty(t, resetter.Resets())

	resetter.ResetSystem(context.Background(), platform.ResetCold, subtype)

	assert.Equal(t, []platform.Reset{{Type: platform.ResetCold, Subtype: subtype}}, resetter.Resets())
}

func TestResetFunc(t *testing.T) {
	t.Parallel()

	var got platform.ResetType

	var resetter platform.Resetter = platform.ResetFunc(func(_ context.Context, kind platform.ResetType, _ guid.GUID) {
		got = kind
	})

	resetter.ResetSystem(context.Background(), platform.ResetWarm, guid.Zero)
	assert.Equal(t, platform.ResetWarm, got)
}

func TestResetType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cold", platform.ResetCold.String())
	assert.Equal(t, "shutdown", platform.ResetShutdown.String())
	assert.Equal(t, "ResetType(42)", platform.ResetType(42).String())
}

func TestBus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bus := platform.NewBus()

	var order []string

	bus.Subscribe(ctx, platform.EventProfileValidated, func(context.Context, platform.Event) {
		order = append(order, "first")
	})
	bus.Subscribe(ctx, platform.EventProfileValidated, func(context.Context, platform.Event) {
		order = append(order, "second")
	})

	other := platform.Event(guid.New())
	bus.Publish(ctx, other)
	assert.Empty(t, order)

	bus.Publish(ctx, platform.EventProfileValidated)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 1, bus.Published(platform.EventProfileValidated))

	bus.Subscribe(ctx, platform.EventProfileValidated, func(context.Context, platform.Event) {
		order = append(order, "late")
	})
	assert.Equal(t, []string{"first", "second", "late"}, order, "late subscribers are replayed")

	assert.Equal(t, "ProfileValidated", platform.EventProfileValidated.String())
}
