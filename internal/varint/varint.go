// Package varint implements the count encoding shared by the codec's
// interning tables and container/string lengths (spec §4.3): base-128,
// little-endian byte order, continuation bit set on every byte but the last.
//
// The wire shape is exactly what encoding/binary.{Uvarint,PutUvarint} produce
// for a uint64, so the package wraps those stdlib primitives rather than
// reimplementing bit-twiddling the teacher already delegates to encoding/binary
// (see encoding/tag.go's use of binary.PutUvarint/binary.Uvarint). The only
// addition is the spec's hard 5-byte cap for a count that must fit in uint32.
package varint

import (
	"encoding/binary"

	"github.com/jsbon/jsbon/errs"
)

// MaxBytes is the most bytes a valid uint32 count can occupy: ceil(32/7) = 5.
const MaxBytes = 5

// Len returns the number of bytes Write would emit for v.
//
// This mirrors encoding/tag.go's varintLen fast path: benchmarked to be
// faster than binary.PutUvarint(make([]byte, 10), v) when only the length is
// needed (e.g. to pre-size a buffer before writing).
func Len(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// Append writes v's varint encoding to the end of dst and returns the result.
func Append(dst []byte, v uint32) []byte {
	var tmp [MaxBytes]byte
	n := binary.PutUvarint(tmp[:], uint64(v))

	return append(dst, tmp[:n]...)
}

// Read decodes a varint-encoded count from data starting at offset.
//
// Returns the decoded value, the number of bytes consumed, and an error if
// the stream ends before a terminating byte (ErrTruncated) or the varint
// would need more than MaxBytes to represent a valid uint32 (ErrInvalidCount).
func Read(data []byte, offset int) (uint32, int, error) {
	if offset >= len(data) {
		return 0, 0, errs.ErrTruncated
	}

	v, n := binary.Uvarint(data[offset:])
	if n == 0 {
		return 0, 0, errs.ErrTruncated
	}
	if n < 0 {
		// binary.Uvarint returns a negative n on overflow past 64 bits, or on a
		// too-long encoding; either way this count is not a valid uint32 count.
		return 0, 0, errs.ErrInvalidCount
	}
	if n > MaxBytes || v > uint64(^uint32(0)) {
		return 0, 0, errs.ErrInvalidCount
	}

	return uint32(v), n, nil
}
