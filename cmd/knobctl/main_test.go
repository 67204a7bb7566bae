package main //nolint:testpackage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/driver/dummy"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/reconcile"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

//nolint:gochecknoglobals
var (
	knobGUID    = guid.MustParse("52D39693-4F64-4EE6-81DE-45895A2E1AC6")
	profileGUID = guid.MustParse("A1A1A1A1-0000-0000-0000-000000000001")
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	return executeWith(t, &app{}, stdin, args...) //nolint:exhaustruct
}

// executeWith runs one invocation against a, so state like a preset storage
// carries over between invocations.
func executeWith(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newAppCommand(a)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// workspace writes a profile volume and a config pointing at it.
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	volumeDir := filepath.Join(dir, "volume")
	require.NoError(t, os.Mkdir(volumeDir, 0o700))

	var blob []byte

	for _, v := range []variable.Variable{
		{Name: "KNOB_A", GUID: knobGUID, Attributes: variable.NonVolatile | variable.BootServiceAccess, Data: []byte{0x0a}},
		{Name: "KNOB_B", GUID: knobGUID, Attributes: variable.NonVolatile | variable.BootServiceAccess, Data: []byte{0xbb}},
	} {
		record, err := varlist.Marshal(v)
		require.NoError(t, err)

		blob = append(blob, record...)
	}

	require.NoError(t, os.WriteFile(filepath.Join(volumeDir, profileGUID.String()+".bin"), blob, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(volumeDir, "README"), []byte("not a section"), 0o600))

	config := fmt.Sprintf("backend: memory\nvolume:\n  dir: %s\nprofile:\n  active: %s\n  allow_list: [%s]\n",
		volumeDir, profileGUID, profileGUID)
	path := filepath.Join(dir, "knobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	return path
}

func TestRecordEncodeDecode(t *testing.T) {
	out, err := execute(t, "", "record", "encode",
		"--name", "COMPLEX_KNOB1a", "--guid", knobGUID.String(), "--attributes", "0x13", "--data", "010203040506070809")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Len(t, raw, 71)

	out, err = execute(t, out, "record", "decode", "--base64")
	require.NoError(t, err)
	assert.Contains(t, out, "name: COMPLEX_KNOB1a")
	assert.Contains(t, out, "attributes: NV|BS|AW")
	assert.Contains(t, out, "size: 9")
	assert.Contains(t, out, "010203040506070809")
}

func TestRecordDecode_Corrupt(t *testing.T) {
	raw, err := varlist.Marshal(variable.Variable{Name: "X", GUID: knobGUID, Attributes: 1, Data: []byte{1}})
	require.NoError(t, err)

	raw[len(raw)-1] ^= 0xff

	_, err = execute(t, string(raw), "record", "decode")
	require.ErrorIs(t, err, varlist.ErrCorruptData)
}

func TestRecordEncode_BadFlags(t *testing.T) {
	_, err := execute(t, "", "record", "encode", "--name", "X", "--guid", "nope")
	require.Error(t, err)

	_, err = execute(t, "", "record", "encode", "--name", "X", "--guid", knobGUID.String(), "--attributes", "ZZ")
	require.Error(t, err)
}

func TestProfileListAndShow(t *testing.T) {
	config := workspace(t)

	out, err := execute(t, "", "--config", config, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "guid: "+profileGUID.String())
	assert.Contains(t, out, "name: KNOB_A")
	assert.Contains(t, out, "name: KNOB_B")

	out, err = execute(t, "", "--config", config, "profile", "show", profileGUID.String(), "--name", "KNOB_B")
	require.NoError(t, err)
	assert.Contains(t, out, "data: bb")
	assert.NotContains(t, out, "KNOB_A")

	_, err = execute(t, "", "--config", config, "profile", "show", profileGUID.String(), "--name", "KNOB_Z")
	require.Error(t, err)
}

func TestBoot(t *testing.T) {
	config := workspace(t)

	out, err := execute(t, "", "--config", config, "boot")
	require.NoError(t, err)
	assert.Contains(t, out, "active: "+profileGUID.String())
	assert.Contains(t, out, "cache_updated: true")
	assert.Contains(t, out, variable.ID("KNOB_A", knobGUID))
	assert.Contains(t, out, "cold")

	out, err = execute(t, "", "--config", config, "boot", "--manufacturing")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped: true")
	assert.Contains(t, out, "Device.ConfigData.KNOB_A", "validated profile registers its settings")
}

func TestApplyAndDump(t *testing.T) {
	dir := t.TempDir()

	record, err := varlist.Marshal(variable.Variable{
		Name: "SvdKnob", GUID: knobGUID, Attributes: variable.NonVolatile, Data: []byte{1, 2},
	})
	require.NoError(t, err)

	packet := fmt.Sprintf("<SettingsPacket><Version>1</Version><LowestSupportedVersion>1</LowestSupportedVersion>"+
		"<Settings><Setting><Id>svd</Id><Value>%s</Value></Setting>"+
		"<Setting><Id>Device.ConfigData.KNOB_A</Id><Value>AQ==</Value></Setting></Settings></SettingsPacket>",
		base64.StdEncoding.EncodeToString(record))

	path := filepath.Join(dir, "packet.xml")
	require.NoError(t, os.WriteFile(path, []byte(packet), 0o600))

	out, err := execute(t, "", "apply", path, "--token", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "<ResultsPacket>")
	assert.Contains(t, out, "<Result>Success</Result>")
	assert.Contains(t, out, "<Result>NotFound</Result>", "no profile was booted, so managed settings are unknown")

	require.NoError(t, os.WriteFile(path, []byte("<SettingsPacket><Version>1</Version>"+
		"<LowestSupportedVersion>2</LowestSupportedVersion></SettingsPacket>"), 0o600))

	_, err = execute(t, "", "apply", path)
	require.Error(t, err)

	out, err = execute(t, "", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "<CurrentSettingsPacket>")
}

func TestApplyAndDump_RegisterWithoutWriting(t *testing.T) {
	ctx := context.Background()
	config := workspace(t)
	drv := dummy.New()
	a := &app{storage: knobs.NewStorage(drv)} //nolint:exhaustruct

	_, err := executeWith(t, a, "", "--config", config, "boot")
	require.NoError(t, err)

	// Leave only the cached profile behind.
	store, err := a.variables(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "KNOB_A", knobGUID))
	require.NoError(t, store.Delete(ctx, "KNOB_B", knobGUID))

	vars, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, vars, 1)
	require.Equal(t, reconcile.CacheVariableName, vars[0].Name)

	mutations := drv.Mutations()

	path := filepath.Join(t.TempDir(), "packet.xml")
	require.NoError(t, os.WriteFile(path, []byte("<SettingsPacket><Version>1</Version>"+
		"<LowestSupportedVersion>2</LowestSupportedVersion></SettingsPacket>"), 0o600))

	_, err = executeWith(t, a, "", "--config", config, "apply", path)
	require.ErrorIs(t, err, settings.ErrRejectedHeader)
	assert.Equal(t, mutations, drv.Mutations(), "a rejected packet changes nothing")

	out, err := executeWith(t, a, "", "--config", config, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "<CurrentSettingsPacket>")
	assert.Equal(t, mutations, drv.Mutations(), "dump changes nothing")

	require.NoError(t, os.WriteFile(path, []byte("<SettingsPacket><Version>1</Version>"+
		"<LowestSupportedVersion>0</LowestSupportedVersion><Settings>"+
		"<Setting><Id>Device.ConfigData.KNOB_A</Id><Value>AQ==</Value></Setting>"+
		"</Settings></SettingsPacket>"), 0o600))

	out, err = executeWith(t, a, "", "--config", config, "apply", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<Result>Success</Result>", "managed settings stay writable")

	knob, err := store.Get(ctx, "KNOB_A", knobGUID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, knob.Data)

	_, err = store.Get(ctx, "KNOB_B", knobGUID)
	require.ErrorIs(t, err, variable.ErrNotFound)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "dump")
	require.Error(t, err)
}
