package bytestream

import (
	"math"

	"github.com/jsbon/jsbon/endian"
	"github.com/jsbon/jsbon/internal/pool"
)

// Writer is a growable, position-tracked sequential byte-stream writer.
//
// A Writer owns its buffer exclusively; it is not safe for concurrent use.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer using the given byte order. codec.Encoder always
// passes endian.GetBigEndianEngine(), matching the wire format (spec §6).
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.Get(),
		engine: engine,
	}
}

// Pos returns the writer's current length, i.e. the byte offset the next
// write will land at. The codec uses this to record a container's tag-byte
// position for identity tracking (spec §3 invariant 2).
func (w *Writer) Pos() int {
	return w.buf.Len()
}

// Bytes returns the bytes written so far. The returned slice aliases the
// writer's internal buffer and is invalidated by the next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the writer's backing buffer to the shared pool. The writer
// must not be used afterward.
func (w *Writer) Release() {
	pool.Put(w.buf)
}

// WriteByte appends a single raw byte.
func (w *Writer) WriteByte(b byte) {
	w.buf.MustWrite([]byte{b})
}

// WriteInt8 appends a signed 8-bit integer.
func (w *Writer) WriteInt8(v int8) {
	w.WriteByte(byte(v))
}

// WriteUint16 appends an unsigned 16-bit integer in the writer's byte order.
func (w *Writer) WriteUint16(v uint16) {
	w.buf.Grow(2)
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// WriteInt16 appends a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 appends an unsigned 32-bit integer in the writer's byte order.
func (w *Writer) WriteUint32(v uint32) {
	w.buf.Grow(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// WriteInt32 appends a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteUint64 appends an unsigned 64-bit integer in the writer's byte order.
func (w *Writer) WriteUint64(v uint64) {
	w.buf.Grow(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// WriteFloat64 appends an IEEE-754 double in the writer's byte order.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteCString appends text followed by a single NUL terminator, the format
// the interning tables use for names and string values (spec §6: name/strval
// := utf8_bytes 0x00). Embedded NUL bytes in text are not representable in
// this framing and are the caller's responsibility to avoid.
func (w *Writer) WriteCString(text string) {
	w.buf.Grow(len(text) + 1)
	w.buf.MustWrite([]byte(text))
	w.WriteByte(0)
}

// WriteBytes appends raw bytes with no length prefix; callers that need a
// length write it themselves (the codec uses varint counts for this).
func (w *Writer) WriteBytes(data []byte) {
	w.buf.MustWrite(data)
}

// Grow pre-reserves capacity for at least n more bytes, avoiding repeated
// reallocation when the caller knows an upcoming write's size in advance.
func (w *Writer) Grow(n int) {
	w.buf.Grow(n)
}
