package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/profile"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

var knobGUID = guid.MustParse("52D39693-4F64-4EE6-81DE-45895A2E1AC6") //nolint:gochecknoglobals

func entries() []variable.Variable {
	return []variable.Variable{
		{Name: "KNOB_A", GUID: knobGUID, Attributes: 0x3, Data: []byte{0x01}},
		{Name: "KNOB_B", GUID: knobGUID, Attributes: 0x3, Data: []byte{0x02, 0x03}},
		{Name: "knob_b", GUID: knobGUID, Attributes: 0x7, Data: []byte{0x04}},
	}
}

func blobOf(t *testing.T, vars ...variable.Variable) ([]byte, []int) {
	t.Helper()

	var (
		blob    []byte
		offsets []int
	)

	for _, v := range vars {
		record, err := varlist.Marshal(v)
		require.NoError(t, err)

		offsets = append(offsets, len(blob))
		blob = append(blob, record...)
	}

	return blob, offsets
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	blob, _ := blobOf(t, entries()...)

	parsed, err := profile.ParseAll(blob)
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	for i, want := range entries() {
		assert.True(t, want.Equal(parsed[i]), "entry %d", i)
	}
}

func TestParseAll_Empty(t *testing.T) {
	t.Parallel()

	parsed, err := profile.ParseAll(nil)
	require.NoError(t, err)
	assert.Empty(t, parsed)

	parsed, err = profile.ParseAll([]byte{})
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestParseAll_Strict(t *testing.T) {
	t.Parallel()

	blob, offsets := blobOf(t, entries()...)

	t.Run("corrupt middle record", func(t *testing.T) {
		t.Parallel()

		corrupted := append([]byte(nil), blob...)
		corrupted[offsets[2]-1] ^= 0xff

		parsed, err := profile.ParseAll(corrupted)
		require.ErrorIs(t, err, varlist.ErrCorruptData)
		assert.Nil(t, parsed)

		var recErr *profile.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, 1, recErr.Index)
		assert.Equal(t, offsets[1], recErr.Offset)
	})

	t.Run("truncated tail", func(t *testing.T) {
		t.Parallel()

		parsed, err := profile.ParseAll(blob[:len(blob)-1])
		require.ErrorIs(t, err, varlist.ErrBufferTooSmall)
		assert.Nil(t, parsed)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		t.Parallel()

		parsed, err := profile.ParseAll(append(append([]byte(nil), blob...), 0x01, 0x02, 0x03))
		require.Error(t, err)
		assert.Nil(t, parsed)
	})
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	blob, offsets := blobOf(t, entries()...)

	found, err := profile.FindByName(blob, "KNOB_B")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x03}, found.Data)

	found, err = profile.FindByName(blob, "knob_b")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04}, found.Data, "match is case sensitive")

	_, err = profile.FindByName(blob, "KNOB")
	require.ErrorIs(t, err, profile.ErrNotFound, "prefix is not a match")

	_, err = profile.FindByName(nil, "KNOB_A")
	require.ErrorIs(t, err, profile.ErrNotFound)

	corrupted := append([]byte(nil), blob...)
	corrupted[offsets[1]+varlist.HeaderSize] ^= 0xff

	_, err = profile.FindByName(corrupted, "knob_b")
	require.ErrorIs(t, err, varlist.ErrCorruptData, "corrupt record before the match aborts")

	found, err = profile.FindByName(corrupted, "KNOB_A")
	require.NoError(t, err, "records after the match are not inspected")
	assert.Equal(t, "KNOB_A", found.Name)
}
