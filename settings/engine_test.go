package settings_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/driver/dummy"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/platform"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

const token settings.AuthToken = 0x5eed

//nolint:gochecknoglobals
var (
	knobGUID = guid.MustParse("52D39693-4F64-4EE6-81DE-45895A2E1AC6")
	nvBS     = variable.NonVolatile | variable.BootServiceAccess
	fixedNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

type fakeAccess struct {
	values map[string][]byte
	byVar  map[string]string
}

func newFakeAccess() *fakeAccess {
	return &fakeAccess{
		values: map[string][]byte{"Device.ConfigData.Knob": {0x00}},
		byVar:  map[string]string{variable.ID("Knob", knobGUID): "Device.ConfigData.Knob"},
	}
}

func (a *fakeAccess) Get(_ context.Context, id string) ([]byte, error) {
	value, ok := a.values[id]
	if !ok {
		return nil, settings.ErrUnknownSetting
	}

	return value, nil
}

func (a *fakeAccess) Set(_ context.Context, id string, value []byte, tok settings.AuthToken) (settings.Flags, error) {
	if tok != token {
		return 0, settings.ErrAccessDenied
	}

	if _, ok := a.values[id]; !ok {
		return 0, settings.ErrUnknownSetting
	}

	a.values[id] = value

	return settings.FlagResetRequired, nil
}

func (a *fakeAccess) Resolve(name string, g guid.GUID) (string, bool) {
	id, ok := a.byVar[variable.ID(name, g)]
	return id, ok
}

type fixture struct {
	drv      *dummy.Driver
	store    *variable.KVStore
	access   *fakeAccess
	resetter *platform.RecordingResetter
	engine   *settings.Engine
}

func newFixture() *fixture {
	drv := dummy.New()
	f := &fixture{
		drv:      drv,
		store:    variable.NewKVStore(knobs.NewStorage(drv)),
		access:   newFakeAccess(),
		resetter: &platform.RecordingResetter{},
		engine:   nil,
	}

	logger, _ := test.NewNullLogger()
	f.engine = settings.New(f.store, f.access, f.resetter,
		settings.WithLogger(logger),
		settings.WithClock(func() time.Time { return fixedNow }),
	)

	return f
}

func record(t *testing.T, v variable.Variable) string {
	t.Helper()

	raw, err := varlist.Marshal(v)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func packet(version, lsv string, entries ...settings.Setting) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<SettingsPacket><CreatedBy>test</CreatedBy><Version>%s</Version>"+
		"<LowestSupportedVersion>%s</LowestSupportedVersion><Settings>", version, lsv)

	for _, s := range entries {
		fmt.Fprintf(&buf, "<Setting><Id>%s</Id><Value>%s</Value></Setting>", s.ID, s.Value)
	}

	buf.WriteString("</Settings></SettingsPacket>")

	return buf.Bytes()
}

func results(t *testing.T, out *bytes.Buffer) settings.ResultsPacket {
	t.Helper()

	var res settings.ResultsPacket
	require.NoError(t, xml.Unmarshal(out.Bytes(), &res))

	return res
}

func TestApply_RejectedHeaderHasNoSideEffects(t *testing.T) {
	t.Parallel()

	svd := settings.Setting{ID: "x", Value: "AAAA"}

	tests := []struct {
		name     string
		packet   []byte
		rejected bool
	}{
		{"malformed xml", []byte("<SettingsPacket><Version>1</Version>"), false},
		{"wrong root", []byte("<ResultsPacket></ResultsPacket>"), false},
		{"missing version", []byte("<SettingsPacket><LowestSupportedVersion>1</LowestSupportedVersion></SettingsPacket>"), true},
		{"non numeric version", packet("two", "1", svd), true},
		{"negative lsv", packet("2", "-1", svd), true},
		{"version above uint32", packet("4294967296", "1", svd), true},
		{"lsv above version", packet("1", "2", svd), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()

			var out bytes.Buffer

			err := f.engine.Apply(context.Background(), tt.packet, token, &out)
			require.Error(t, err)
			assert.Equal(t, tt.rejected, errors.Is(err, settings.ErrRejectedHeader))
			assert.NotErrorIs(t, err, platform.ErrResetReturned)

			assert.Zero(t, f.drv.Mutations())
			assert.Empty(t, f.resetter.Resets())
			assert.Zero(t, out.Len())
		})
	}
}

func TestApply_MaxUint32Accepted(t *testing.T) {
	t.Parallel()

	f := newFixture()

	var out bytes.Buffer

	err := f.engine.Apply(context.Background(), packet("4294967295", "4294967295"), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)

	res := results(t, &out)
	assert.Equal(t, "4294967295", res.Version)
	assert.Empty(t, res.Settings)
}

func TestApply_PerSettingResilience(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	good := variable.Variable{Name: "SvdKnob", GUID: knobGUID, Attributes: nvBS, Data: []byte{1, 2, 3}}
	other := variable.Variable{Name: "Other", GUID: knobGUID, Attributes: nvBS, Data: []byte{9}}

	corrupt, err := varlist.Marshal(other)
	require.NoError(t, err)
	corrupt[len(corrupt)-1] ^= 0xff

	full, err := varlist.Marshal(other)
	require.NoError(t, err)

	trailing := append(append([]byte(nil), full...), 0x00)

	in := packet("2", "1",
		settings.Setting{ID: "bad", Value: "!!not base64!!"},
		settings.Setting{ID: good.String(), Value: record(t, good)},
		settings.Setting{ID: "corrupt", Value: base64.StdEncoding.EncodeToString(corrupt)},
		settings.Setting{ID: "short", Value: base64.StdEncoding.EncodeToString(full[:len(full)-4])},
		settings.Setting{ID: "trailing", Value: base64.StdEncoding.EncodeToString(trailing)},
		settings.Setting{ID: "Device.ConfigData.Knob", Value: "AQ=="},
		settings.Setting{ID: "Device.ConfigData.Missing", Value: "AQ=="},
		settings.Setting{ID: "header", Value: base64.StdEncoding.EncodeToString(full[:4])},
	)

	var out bytes.Buffer

	err = f.engine.Apply(ctx, in, token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)

	require.Len(t, f.resetter.Resets(), 1)
	assert.Equal(t, platform.Reset{Type: platform.ResetCold, Subtype: settings.ResetSubtype}, f.resetter.Resets()[0])

	res := results(t, &out)
	assert.Equal(t, fixedNow.Format(time.RFC3339), res.CreatedOn)
	assert.Equal(t, "2", res.Version)
	assert.Equal(t, "1", res.LowestSupportedVersion)

	expected := []settings.SettingResult{
		{ID: "bad", Result: settings.StatusInvalidParameter, Flags: 0},
		{ID: good.String(), Result: settings.StatusSuccess, Flags: settings.FlagResetRequired},
		{ID: "corrupt", Result: settings.StatusCorruptData, Flags: 0},
		{ID: "short", Result: settings.StatusBufferTooSmall, Flags: 0},
		{ID: "trailing", Result: settings.StatusInvalidParameter, Flags: 0},
		{ID: "Device.ConfigData.Knob", Result: settings.StatusSuccess, Flags: settings.FlagResetRequired},
		{ID: "Device.ConfigData.Missing", Result: settings.StatusNotFound, Flags: 0},
		{ID: "header", Result: settings.StatusBufferTooSmall, Flags: 0},
	}
	assert.Equal(t, expected, res.Settings)

	got, err := f.store.Get(ctx, good.Name, good.GUID)
	require.NoError(t, err)
	assert.True(t, good.Equal(got))

	_, err = f.store.Get(ctx, other.Name, other.GUID)
	require.ErrorIs(t, err, variable.ErrNotFound)

	assert.Equal(t, []byte{0x01}, f.access.values["Device.ConfigData.Knob"])
}

func TestApply_ReplacesVariableWithOtherAttributes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.store.Set(ctx, variable.Variable{
		Name: "SvdKnob", GUID: knobGUID, Attributes: variable.NonVolatile, Data: []byte{0xff},
	}))

	want := variable.Variable{Name: "SvdKnob", GUID: knobGUID, Attributes: nvBS | variable.RuntimeAccess, Data: []byte{1, 2}}

	var out bytes.Buffer

	err := f.engine.Apply(ctx, packet("1", "1", settings.Setting{ID: "svd", Value: record(t, want)}), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)
	assert.Equal(t, settings.StatusSuccess, results(t, &out).Settings[0].Result)

	got, err := f.store.Get(ctx, want.Name, want.GUID)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestApply_AccessDenied(t *testing.T) {
	t.Parallel()

	f := newFixture()

	var out bytes.Buffer

	err := f.engine.Apply(context.Background(),
		packet("1", "1", settings.Setting{ID: "Device.ConfigData.Knob", Value: "AQ=="}), settings.NoAuthToken, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)

	assert.Equal(t, settings.StatusAccessDenied, results(t, &out).Settings[0].Result)
	assert.Equal(t, []byte{0x00}, f.access.values["Device.ConfigData.Knob"])
}

func TestApply_NoAccessMakesManagedIdsUnknown(t *testing.T) {
	t.Parallel()

	drv := dummy.New()
	engine := settings.New(variable.NewKVStore(knobs.NewStorage(drv)), nil, &platform.RecordingResetter{})

	var out bytes.Buffer

	err := engine.Apply(context.Background(),
		packet("1", "1", settings.Setting{ID: "Device.ConfigData.Knob", Value: "AQ=="}), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)
	assert.Equal(t, settings.StatusNotFound, results(t, &out).Settings[0].Result)
}

func TestApply_RollbackFloor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	var out bytes.Buffer

	err := f.engine.Apply(ctx, packet("5", "3"), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)

	floor, err := f.store.Get(ctx, settings.FloorVariableName, settings.FloorNamespace)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 0, 0}, floor.Data)

	mutations := f.drv.Mutations()

	out.Reset()

	err = f.engine.Apply(ctx, packet("2", "1"), token, &out)
	require.ErrorIs(t, err, settings.ErrRejectedHeader)
	assert.Equal(t, mutations, f.drv.Mutations())
	assert.Len(t, f.resetter.Resets(), 1)

	out.Reset()

	err = f.engine.Apply(ctx, packet("3", "2"), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned, "a version at the floor is accepted")

	floor, err = f.store.Get(ctx, settings.FloorVariableName, settings.FloorNamespace)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 0, 0}, floor.Data, "the floor never goes down")
}

func TestApply_FloorNotSettable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	lowered := variable.Variable{
		Name: settings.FloorVariableName, GUID: settings.FloorNamespace, Attributes: nvBS, Data: []byte{0, 0, 0, 0},
	}

	var out bytes.Buffer

	require.ErrorIs(t, f.engine.Apply(ctx, packet("7", "7"), token, &out), platform.ErrResetReturned)

	out.Reset()

	err := f.engine.Apply(ctx, packet("7", "0", settings.Setting{ID: "floor", Value: record(t, lowered)}), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)
	assert.Equal(t, settings.StatusWriteProtected, results(t, &out).Settings[0].Result)

	floor, err := f.store.Get(ctx, settings.FloorVariableName, settings.FloorNamespace)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 0, 0, 0}, floor.Data)
}

func TestApply_MalformedFloorIsRewritten(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	malformed := variable.Variable{
		Name: settings.FloorVariableName, GUID: settings.FloorNamespace, Attributes: nvBS, Data: []byte{9, 0, 0},
	}
	require.NoError(t, f.store.Set(ctx, malformed))

	var out bytes.Buffer

	err := f.engine.Apply(ctx, packet("5", "2"), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)
	assert.Len(t, f.resetter.Resets(), 1)

	floor, err := f.store.Get(ctx, settings.FloorVariableName, settings.FloorNamespace)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 0}, floor.Data)
}

func TestApply_NilResultsWriter(t *testing.T) {
	t.Parallel()

	f := newFixture()
	mutations := f.drv.Mutations()

	err := f.engine.Apply(context.Background(), packet("1", "1"), token, nil)
	require.ErrorIs(t, err, settings.ErrInvalidValue)
	require.NotErrorIs(t, err, platform.ErrResetReturned)
	assert.Equal(t, mutations, f.drv.Mutations())
	assert.Empty(t, f.resetter.Resets())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestApply_ResetsEvenIfResultsCannotBeWritten(t *testing.T) {
	t.Parallel()

	f := newFixture()

	err := f.engine.Apply(context.Background(), packet("1", "1"), token, failingWriter{})
	require.ErrorIs(t, err, platform.ErrResetReturned)
	require.ErrorIs(t, err, settings.ErrResultsNotWritten)
	require.ErrorContains(t, err, "closed")
	assert.Len(t, f.resetter.Resets(), 1)
}

func TestDump(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	svd := variable.Variable{Name: "SvdKnob", GUID: knobGUID, Attributes: nvBS, Data: []byte{1, 2, 3}}
	managed := variable.Variable{Name: "Knob", GUID: knobGUID, Attributes: nvBS, Data: []byte{0x00}}

	require.NoError(t, f.store.Set(ctx, svd))
	require.NoError(t, f.store.Set(ctx, managed))

	var out bytes.Buffer

	require.ErrorIs(t, f.engine.Apply(ctx, packet("4", "4"), token, &out), platform.ErrResetReturned)

	doc, err := f.engine.Dump(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte(xml.Header)))
	assert.Contains(t, string(doc), "\n  <Settings>")

	var current settings.CurrentSettingsPacket
	require.NoError(t, xml.Unmarshal(doc, &current))

	assert.Equal(t, uint32(4), current.Version)
	assert.Equal(t, uint32(4), current.LowestSupportedVersion)
	require.Len(t, current.Settings, 2, "the floor variable is not dumped")

	byID := map[string]string{}
	for _, s := range current.Settings {
		byID[s.ID] = s.Value
	}

	assert.Equal(t, "AA==", byID["Device.ConfigData.Knob"])

	raw, err := base64.StdEncoding.DecodeString(byID[svd.String()])
	require.NoError(t, err)

	decoded, n, err := varlist.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.True(t, svd.Equal(decoded))
}

func TestDump_ThenApplyRestores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	svd := variable.Variable{Name: "SvdKnob", GUID: knobGUID, Attributes: nvBS, Data: []byte{1, 2, 3}}
	require.NoError(t, f.store.Set(ctx, svd))

	doc, err := f.engine.Dump(ctx)
	require.NoError(t, err)

	var current settings.CurrentSettingsPacket
	require.NoError(t, xml.Unmarshal(doc, &current))

	require.NoError(t, f.store.Delete(ctx, svd.Name, svd.GUID))

	var out bytes.Buffer

	err = f.engine.Apply(ctx, packet("1", "0", current.Settings...), token, &out)
	require.ErrorIs(t, err, platform.ErrResetReturned)

	got, err := f.store.Get(ctx, svd.Name, svd.GUID)
	require.NoError(t, err)
	assert.True(t, svd.Equal(got))
}

func TestDump_MalformedFloor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture()

	malformed := variable.Variable{
		Name: settings.FloorVariableName, GUID: settings.FloorNamespace, Attributes: nvBS, Data: []byte{1, 2, 3, 4, 5},
	}
	svd := variable.Variable{Name: "SvdKnob", GUID: knobGUID, Attributes: nvBS, Data: []byte{1}}

	require.NoError(t, f.store.Set(ctx, malformed))
	require.NoError(t, f.store.Set(ctx, svd))

	doc, err := f.engine.Dump(ctx)
	require.NoError(t, err)

	var current settings.CurrentSettingsPacket
	require.NoError(t, xml.Unmarshal(doc, &current))

	assert.Equal(t, uint32(0), current.Version)
	assert.Equal(t, uint32(0), current.LowestSupportedVersion)
	require.Len(t, current.Settings, 1)
	assert.Equal(t, svd.String(), current.Settings[0].ID)
}
