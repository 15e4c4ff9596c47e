package bytestream

import (
	"math"

	"github.com/jsbon/jsbon/endian"
	"github.com/jsbon/jsbon/errs"
	"github.com/jsbon/jsbon/internal/varint"
)

// Reader is a random-access, position-tracked sequential byte-stream reader
// over an immutable input slice. It never copies the input except where a
// typed read (ReadBytes, ReadCString) hands ownership of a fresh slice back
// to the caller.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader wraps data for sequential reads in the given byte order.
// codec.Decoder always passes endian.GetBigEndianEngine().
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Pos returns the current read cursor, in bytes from the start of data.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the wrapped input.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek repositions the cursor to an absolute offset. It fails with
// ErrOutOfBoundsReference if pos falls outside the input.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return errs.ErrOutOfBoundsReference
	}
	r.pos = pos

	return nil
}

func (r *Reader) require(n int) error {
	if r.Remaining() < n {
		return errs.ErrTruncated
	}

	return nil
}

// ReadByte consumes and returns a single raw byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadInt8 consumes a signed 8-bit integer.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// ReadUint16 consumes an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := r.engine.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

// ReadInt16 consumes a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 consumes an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := r.engine.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

// ReadInt32 consumes a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 consumes an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := r.engine.Uint64(r.data[r.pos:])
	r.pos += 8

	return v, nil
}

// ReadFloat64 consumes an IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadCString consumes UTF-8 text up to (and past) the next NUL terminator.
func (r *Reader) ReadCString() (string, error) {
	idx := -1
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", errs.ErrTruncated
	}

	s := string(r.data[r.pos:idx])
	r.pos = idx + 1

	return s, nil
}

// ReadBytes consumes and returns a copy of the next n raw bytes. It fails
// with ErrTruncated if n exceeds the remaining input — the caller is
// responsible for bounding n against an independent sanity limit before
// calling this for an untrusted length (spec §5: adversarial large counts).
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.ErrInvalidCount
	}
	if err := r.require(n); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	CopyBytes(out, r.data[r.pos:r.pos+n])
	r.pos += n

	return out, nil
}

// ReadVarint consumes a base-128 varint count (spec §4.3) and returns its
// decoded value.
func (r *Reader) ReadVarint() (uint32, error) {
	v, n, err := varint.Read(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n

	return v, nil
}

// CopyBytes is the memcpy helper the byte-stream utility exposes to callers
// that need to duplicate a slice without going through a Reader/Writer pair.
func CopyBytes(dst, src []byte) int {
	return copy(dst, src)
}
