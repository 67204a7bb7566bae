package varlist_test

import (
	"encoding/binary"
	"hash/crc32"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

var knobGUID = guid.MustParse("52D39693-4F64-4EE6-81DE-45895A2E1AC6") //nolint:gochecknoglobals

func complexKnob() variable.Variable {
	return variable.Variable{
		Name:       "COMPLEX_KNOB1a",
		GUID:       knobGUID,
		Attributes: 0x13,
		Data:       []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
	}
}

func TestSizeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		nameSize uint32
		dataSize uint32
		expected uint32
		err      error
	}{
		{"empty", 0, 0, 32, nil},
		{"complex knob", 30, 9, 71, nil},
		{"name overflow", math.MaxUint32, 1, 0, varlist.ErrOverflow},
		{"overhead overflow", math.MaxUint32 - 16, 0, 0, varlist.ErrOverflow},
		{"data overflow", 2, math.MaxUint32 - 1, 0, varlist.ErrOverflow},
		{"largest", math.MaxUint32 - 42, 10, math.MaxUint32, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			size, err := varlist.SizeOf(test.nameSize, test.dataSize)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, size)
		})
	}
}

func TestComplexKnobScenario(t *testing.T) {
	t.Parallel()

	knob := complexKnob()

	record, err := varlist.Marshal(knob)
	require.NoError(t, err)
	require.Len(t, record, 71)

	le := binary.LittleEndian
	assert.Equal(t, uint32(30), le.Uint32(record[0:]))
	assert.Equal(t, uint32(9), le.Uint32(record[4:]))
	assert.Equal(t, []byte{'C', 0, 'O', 0}, record[8:12])
	assert.Equal(t, []byte{0, 0}, record[36:38], "name terminator")
	assert.Equal(t, knobGUID[:], record[38:54])
	assert.Equal(t, uint32(0x13), le.Uint32(record[54:]))
	assert.Equal(t, knob.Data, record[58:67])
	assert.Equal(t, crc32.ChecksumIEEE(record[:67]), le.Uint32(record[67:]))

	decoded, consumed, err := varlist.Decode(record)
	require.NoError(t, err)
	assert.Equal(t, 71, consumed)
	assert.True(t, knob.Equal(decoded))

	for i := 67; i < 71; i++ {
		corrupted := append([]byte(nil), record...)
		corrupted[i] ^= 0xff

		_, _, err := varlist.Decode(corrupted)
		require.ErrorIs(t, err, varlist.ErrCorruptData, "crc byte %d", i)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    variable.Variable
	}{
		{"single byte", variable.Variable{Name: "A", GUID: knobGUID, Attributes: 0x1, Data: []byte{0}}},
		{"empty data", variable.Variable{Name: "EMPTY", GUID: knobGUID, Attributes: 0x3, Data: []byte{}}},
		{"non ascii", variable.Variable{Name: "Knöb_設定", GUID: guid.New(), Attributes: 0x7, Data: []byte("value")}},
		{"surrogate pair", variable.Variable{Name: "emoji😀", GUID: guid.New(), Attributes: 0x3, Data: []byte{0xff, 0xfe}}},
		{"large data", variable.Variable{Name: "BIG", GUID: knobGUID, Attributes: 0x3, Data: make([]byte, 64*1024)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			record, err := varlist.Marshal(test.v)
			require.NoError(t, err)

			decoded, consumed, err := varlist.Decode(record)
			require.NoError(t, err)
			assert.Equal(t, len(record), consumed)
			assert.Equal(t, test.v.Name, decoded.Name)
			assert.Equal(t, test.v.GUID, decoded.GUID)
			assert.Equal(t, test.v.Attributes, decoded.Attributes)
			assert.Equal(t, test.v.Data, decoded.Data)
		})
	}
}

func TestDecode_TamperAnyByte(t *testing.T) {
	t.Parallel()

	record, err := varlist.Marshal(complexKnob())
	require.NoError(t, err)

	// Header bytes change the record size, so they may also report a short buffer.
	for i := varlist.HeaderSize; i < len(record); i++ {
		corrupted := append([]byte(nil), record...)
		corrupted[i] ^= 0x01

		_, _, err := varlist.Decode(corrupted)
		require.ErrorIs(t, err, varlist.ErrCorruptData, "byte %d", i)
	}

	for i := range varlist.HeaderSize {
		corrupted := append([]byte(nil), record...)
		corrupted[i] ^= 0x01

		_, _, err := varlist.Decode(corrupted)
		require.Error(t, err, "byte %d", i)
	}
}

func TestDecode_NoAliasing(t *testing.T) {
	t.Parallel()

	record, err := varlist.Marshal(complexKnob())
	require.NoError(t, err)

	decoded, _, err := varlist.Decode(record)
	require.NoError(t, err)

	record[58] = 0xee
	assert.Equal(t, byte(0x01), decoded.Data[0])
}

func TestDecode_BufferTooSmall(t *testing.T) {
	t.Parallel()

	record, err := varlist.Marshal(complexKnob())
	require.NoError(t, err)

	tests := []struct {
		name   string
		buf    []byte
		needed uint32
	}{
		{"empty", nil, varlist.HeaderSize},
		{"partial header", record[:5], varlist.HeaderSize},
		{"header only", record[:varlist.HeaderSize], 71},
		{"missing crc", record[:70], 71},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, consumed, err := varlist.Decode(test.buf)
			require.ErrorIs(t, err, varlist.ErrBufferTooSmall)
			assert.Zero(t, consumed)

			var tooSmall *varlist.BufferTooSmallError
			require.ErrorAs(t, err, &tooSmall)
			assert.Equal(t, test.needed, tooSmall.Needed)
		})
	}
}

func TestDecode_Overflow(t *testing.T) {
	t.Parallel()

	header := make([]byte, varlist.HeaderSize)
	binary.LittleEndian.PutUint32(header, math.MaxUint32)
	binary.LittleEndian.PutUint32(header[4:], math.MaxUint32)

	_, _, err := varlist.Decode(header)
	require.ErrorIs(t, err, varlist.ErrOverflow)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	t.Parallel()

	record, err := varlist.Marshal(complexKnob())
	require.NoError(t, err)

	_, consumed, err := varlist.Decode(append(record, 0xaa, 0xbb))
	require.NoError(t, err)
	assert.Equal(t, 71, consumed)
}

// rawRecord builds a record with a valid checksum around an arbitrary name field.
func rawRecord(name []byte, data []byte) []byte {
	le := binary.LittleEndian

	buf := le.AppendUint32(nil, uint32(len(name))) //nolint:gosec
	buf = le.AppendUint32(buf, uint32(len(data)))  //nolint:gosec
	buf = append(buf, name...)
	buf = append(buf, knobGUID[:]...)
	buf = le.AppendUint32(buf, 0x3)
	buf = append(buf, data...)

	return le.AppendUint32(buf, crc32.ChecksumIEEE(buf))
}

func TestDecode_InvalidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []byte
	}{
		{"zero size", nil},
		{"odd size", []byte{'A', 0, 0}},
		{"only terminator", []byte{0, 0}},
		{"no terminator", []byte{'A', 0, 'B', 0}},
		{"embedded nul", []byte{'A', 0, 0, 0, 'B', 0, 0, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := varlist.Decode(rawRecord(test.raw, []byte{1}))
			require.ErrorIs(t, err, varlist.ErrCorruptData)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	knob := complexKnob()

	t.Run("exact buffer", func(t *testing.T) {
		t.Parallel()

		buf := make([]byte, 71)

		n, err := varlist.Encode(knob, buf)
		require.NoError(t, err)
		assert.Equal(t, 71, n)
	})

	t.Run("too small writes nothing", func(t *testing.T) {
		t.Parallel()

		buf := make([]byte, 70)

		n, err := varlist.Encode(knob, buf)
		require.ErrorIs(t, err, varlist.ErrBufferTooSmall)
		assert.Zero(t, n)
		assert.Equal(t, make([]byte, 70), buf)

		var tooSmall *varlist.BufferTooSmallError
		require.ErrorAs(t, err, &tooSmall)
		assert.Equal(t, uint32(71), tooSmall.Needed)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		buf := make([]byte, 128)

		_, err := varlist.Encode(variable.Variable{GUID: knobGUID, Data: []byte{1}}, buf)
		require.ErrorIs(t, err, varlist.ErrInvalidArgument)

		_, err = varlist.Encode(variable.Variable{Name: "KNOB", GUID: knobGUID}, buf)
		require.ErrorIs(t, err, varlist.ErrInvalidArgument)

		_, err = varlist.Marshal(variable.Variable{Name: "KNOB"})
		require.ErrorIs(t, err, varlist.ErrInvalidArgument)
	})

	t.Run("unencodable names", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			varName string
		}{
			{"embedded nul", "KN\x00OB"},
			{"invalid utf8", "KNOB\xff"},
			{"lone surrogate bytes", "KNOB\xed\xa0\x80"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				buf := make([]byte, 128)

				n, err := varlist.Encode(variable.Variable{Name: tc.varName, GUID: knobGUID, Data: []byte{1}}, buf)
				require.ErrorIs(t, err, varlist.ErrInvalidArgument)
				assert.Zero(t, n)
				assert.Equal(t, make([]byte, 128), buf)

				_, err = varlist.Marshal(variable.Variable{Name: tc.varName, GUID: knobGUID, Data: []byte{1}})
				require.ErrorIs(t, err, varlist.ErrInvalidArgument)
			})
		}
	})
}
