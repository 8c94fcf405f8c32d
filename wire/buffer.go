// Package wire provides the byte buffers and positional encoders for the
// native protocol's primitive field types.
//
// Every multi-byte field on the wire is big-endian (network byte order).
// Encoders write at an explicit offset into a pre-sized buffer and return
// the offset just past the written field, so callers chain writes:
//
//	buf := wire.NewBuffer(4 + len(q) + 2)
//	pos := buf.EncodeLongString(0, q)
//	buf.EncodeUint16(pos, uint16(consistency))
//
// Field types follow the protocol's framing vocabulary:
//   - [short]: uint16
//   - [int]: int32
//   - [long]: int64
//   - [string]: [short] length + UTF-8 bytes
//   - [long string]: [int] length + UTF-8 bytes
//   - [bytes]: [int] length + bytes, length -1 encodes null
//   - [short bytes]: [short] length + bytes
package wire

import "encoding/binary"

// Buffer is a fixed-size byte region produced by the request encoders and
// consumed by the transport. Content is written positionally, not appended;
// a Buffer is sized for its exact payload at construction.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer pre-sized to exactly size bytes.
func NewBuffer(size int) Buffer {
	return Buffer{B: make([]byte, size)}
}

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int {
	return len(b.B)
}

// Bytes returns the underlying byte slice. Do not modify the returned
// slice after handing the buffer to the transport.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// EncodeByte writes a single byte at pos and returns the next offset.
func (b *Buffer) EncodeByte(pos int, v byte) int {
	b.B[pos] = v
	return pos + 1
}

// EncodeUint16 writes a big-endian [short] at pos and returns the next offset.
func (b *Buffer) EncodeUint16(pos int, v uint16) int {
	binary.BigEndian.PutUint16(b.B[pos:], v)
	return pos + 2
}

// EncodeInt32 writes a big-endian [int] at pos and returns the next offset.
func (b *Buffer) EncodeInt32(pos int, v int32) int {
	binary.BigEndian.PutUint32(b.B[pos:], uint32(v))
	return pos + 4
}

// EncodeInt64 writes a big-endian [long] at pos and returns the next offset.
func (b *Buffer) EncodeInt64(pos int, v int64) int {
	binary.BigEndian.PutUint64(b.B[pos:], uint64(v))
	return pos + 8
}

// EncodeString writes a [string] (uint16 length prefix + bytes) at pos and
// returns the next offset. The string must not exceed 65535 bytes.
func (b *Buffer) EncodeString(pos int, s string) int {
	pos = b.EncodeUint16(pos, uint16(len(s))) //nolint:gosec
	return pos + copy(b.B[pos:], s)
}

// EncodeLongString writes a [long string] (int32 length prefix + bytes) at
// pos and returns the next offset.
func (b *Buffer) EncodeLongString(pos int, s string) int {
	pos = b.EncodeInt32(pos, int32(len(s))) //nolint:gosec
	return pos + copy(b.B[pos:], s)
}

// EncodeBytes writes a [bytes] field at pos and returns the next offset.
// A nil slice encodes as null (length -1, no payload); an empty non-nil
// slice encodes as length 0.
func (b *Buffer) EncodeBytes(pos int, v []byte) int {
	if v == nil {
		return b.EncodeInt32(pos, -1)
	}
	pos = b.EncodeInt32(pos, int32(len(v))) //nolint:gosec
	return pos + copy(b.B[pos:], v)
}

// EncodeShortBytes writes a [short bytes] field (uint16 length prefix +
// bytes) at pos and returns the next offset.
func (b *Buffer) EncodeShortBytes(pos int, v []byte) int {
	pos = b.EncodeUint16(pos, uint16(len(v))) //nolint:gosec
	return pos + copy(b.B[pos:], v)
}

// BytesSize returns the encoded size of a [bytes] field holding v.
func BytesSize(v []byte) int {
	if v == nil {
		return 4
	}
	return 4 + len(v)
}

// StringSize returns the encoded size of a [string] field holding s.
func StringSize(s string) int {
	return 2 + len(s)
}

// LongStringSize returns the encoded size of a [long string] field holding s.
func LongStringSize(s string) int {
	return 4 + len(s)
}
