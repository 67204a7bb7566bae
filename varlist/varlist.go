// Package varlist implements the var-list record: the binary form of one
// configuration knob as it is kept in profile blobs and settings packets.
//
// Layout, little-endian:
//
//	NameSize u32 | DataSize u32 | Name [NameSize] | GUID [16] | Attributes u32 | Data [DataSize] | CRC32 u32
//
// Name is UTF-16LE including its NUL terminator. CRC32 (IEEE) covers every
// byte before it.
package varlist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/hasher"
	"github.com/tarantool/go-knobs/variable"
)

const (
	// HeaderSize is the size of the NameSize and DataSize fields.
	HeaderSize = 8
	// Overhead is the record size excluding name and data.
	Overhead = HeaderSize + guid.Size + 4 + crcSize

	crcSize = 4
)

//nolint:gochecknoglobals
var (
	crc32Hasher = hasher.NewCRC32Hasher()
	utf16le     = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	nulUnit     = []byte{0, 0}
)

// SizeOf returns the encoded size of a record with the given name and data sizes.
func SizeOf(nameSize, dataSize uint32) (uint32, error) {
	sum, carry := bits.Add32(nameSize, dataSize, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	sum, carry = bits.Add32(sum, Overhead, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}

func encodeName(name string) ([]byte, error) {
	if err := variable.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if !utf8.ValidString(name) {
		return nil, fmt.Errorf("%w: name %q is not valid UTF-8", ErrInvalidArgument, name)
	}

	encoded, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("%w: name %q: %w", ErrInvalidArgument, name, err)
	}

	return append(encoded, nulUnit...), nil
}

// Encode writes v into buf and returns the number of bytes written.
// Nothing is written when buf is too small.
func Encode(v variable.Variable, buf []byte) (int, error) {
	if v.Name == "" || v.Data == nil {
		return 0, fmt.Errorf("%w: name and data are required", ErrInvalidArgument)
	}

	name, err := encodeName(v.Name)
	if err != nil {
		return 0, err
	}

	if uint64(len(name)) > uint64(^uint32(0)) || uint64(len(v.Data)) > uint64(^uint32(0)) {
		return 0, ErrOverflow
	}

	nameSize, dataSize := uint32(len(name)), uint32(len(v.Data)) //nolint:gosec

	needed, err := SizeOf(nameSize, dataSize)
	if err != nil {
		return 0, err
	}

	if uint64(len(buf)) < uint64(needed) {
		return 0, errBufferTooSmall(needed, len(buf))
	}

	le := binary.LittleEndian
	off := 0

	le.PutUint32(buf[off:], nameSize)
	le.PutUint32(buf[off+4:], dataSize)
	off += HeaderSize

	off += copy(buf[off:], name)
	off += copy(buf[off:], v.GUID[:])

	le.PutUint32(buf[off:], uint32(v.Attributes))
	off += 4

	off += copy(buf[off:], v.Data)

	sum, err := hasher.Sum32(crc32Hasher, buf[:off])
	if err != nil {
		return 0, fmt.Errorf("failed to checksum record: %w", err)
	}

	le.PutUint32(buf[off:], sum)

	return off + crcSize, nil
}

// Marshal allocates a buffer of the exact size and encodes v into it.
func Marshal(v variable.Variable) ([]byte, error) {
	name, err := encodeName(v.Name)
	if err != nil {
		return nil, err
	}

	needed, err := SizeOf(uint32(len(name)), uint32(len(v.Data))) //nolint:gosec
	if err != nil {
		return nil, err
	}

	buf := make([]byte, needed)

	n, err := Encode(v, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// Decode reads one record from the start of buf. It returns a variable that
// shares no memory with buf and the number of bytes consumed.
func Decode(buf []byte) (variable.Variable, int, error) {
	if len(buf) < HeaderSize {
		return variable.Variable{}, 0, errBufferTooSmall(HeaderSize, len(buf))
	}

	le := binary.LittleEndian
	nameSize := le.Uint32(buf)
	dataSize := le.Uint32(buf[4:])

	needed, err := SizeOf(nameSize, dataSize)
	if err != nil {
		return variable.Variable{}, 0, err
	}

	if uint64(len(buf)) < uint64(needed) {
		return variable.Variable{}, 0, errBufferTooSmall(needed, len(buf))
	}

	record := buf[:needed]
	body := record[:needed-crcSize]

	sum, err := hasher.Sum32(crc32Hasher, body)
	if err != nil {
		return variable.Variable{}, 0, fmt.Errorf("failed to checksum record: %w", err)
	}

	if stored := le.Uint32(record[needed-crcSize:]); stored != sum {
		return variable.Variable{}, 0, fmt.Errorf("%w: crc32 %#08x, computed %#08x", ErrCorruptData, stored, sum)
	}

	off := uint32(HeaderSize)
	rawName := body[off : off+nameSize]
	off += nameSize

	name, err := decodeName(rawName)
	if err != nil {
		return variable.Variable{}, 0, err
	}

	var g guid.GUID
	copy(g[:], body[off:off+guid.Size])
	off += guid.Size

	attrs := variable.Attributes(le.Uint32(body[off:]))
	off += 4

	return variable.Variable{
		Name:       name,
		GUID:       g,
		Attributes: attrs,
		Data:       bytes.Clone(body[off : off+dataSize]),
	}, int(needed), nil
}

// decodeName validates and decodes a NUL-terminated UTF-16LE name.
func decodeName(raw []byte) (string, error) {
	switch {
	case len(raw) < len(nulUnit) || len(raw)%2 != 0:
		return "", fmt.Errorf("%w: name size %d", ErrCorruptData, len(raw))
	case !bytes.Equal(raw[len(raw)-2:], nulUnit):
		return "", fmt.Errorf("%w: name is not NUL terminated", ErrCorruptData)
	}

	units := raw[:len(raw)-2]
	for i := 0; i < len(units); i += 2 {
		if units[i] == 0 && units[i+1] == 0 {
			return "", fmt.Errorf("%w: name has an embedded NUL", ErrCorruptData)
		}
	}

	if len(units) == 0 {
		return "", fmt.Errorf("%w: empty name", ErrCorruptData)
	}

	name, err := utf16le.NewDecoder().Bytes(units)
	if err != nil {
		return "", fmt.Errorf("%w: name: %w", ErrCorruptData, err)
	}

	return string(name), nil
}
