// Package jsbon provides a high-performance, self-describing binary codec for
// structured values, preserving primitive types, dates, raw byte buffers,
// nested containers, and shared or cyclic object identity across a
// round trip.
//
// JSBON is optimized for scenarios where a value graph needs to travel
// through an opaque byte pipe — disk, network, cache — and come back out
// exactly as it went in, including objects and arrays that were the same
// entity before encoding.
//
// # Core Features
//
//   - Narrowest-tag numeric encoding (INT8/INT16/INT32/NUMBER) chosen by value
//   - Dual string interning (object keys and string values each deduplicated)
//   - By-reference emission for shared containers, with full cycle support
//   - Optional CRC32 integrity check over the payload
//   - An outer archive envelope adding compression (Zstd/S2/LZ4) and a second,
//     independent CRC32 for callers who want end-to-end integrity on top
//
// # Basic Usage
//
// Building and encoding a value:
//
//	import "github.com/jsbon/jsbon"
//	import "github.com/jsbon/jsbon/value"
//
//	obj := value.NewObject().
//	    Set("name", "sensor-7").
//	    Set("reading", 98.6).
//	    Set("active", true)
//
//	data, err := jsbon.Encode(obj)
//
// Decoding it back:
//
//	v, err := jsbon.Decode(data)
//	obj := v.(*value.Object)
//	name, _ := obj.Get("name")
//
// Requesting an integrity check:
//
//	data, err := jsbon.Encode(obj, jsbon.WithCRC32())
//
// # Package Structure
//
// This package is a thin convenience layer over codec.Encode/codec.Decode,
// the engine that implements the wire format. For archiving a finished
// stream with compression, Archive, ArchiveWithStats and Unarchive wrap the
// archive package.
package jsbon

import (
	"github.com/jsbon/jsbon/archive"
	"github.com/jsbon/jsbon/codec"
	"github.com/jsbon/jsbon/compress"
	"github.com/jsbon/jsbon/format"
	"github.com/jsbon/jsbon/value"
)

// Encode serializes v into a JSBON byte stream. v must be built from the
// closed set of Go types value.go documents: nil, value.Undefined, bool,
// any signed or unsigned integer type, float32/float64, string, time.Time,
// []byte, *value.Object, *value.Array, map[string]any, []any, or a
// value.PlainMapper.
func Encode(v any, opts ...codec.EncodeOption) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// Decode parses a JSBON byte stream back into a value.
func Decode(data []byte) (any, error) {
	return codec.Decode(data)
}

// EncodeOption configures a single Encode call. See WithCRC32.
type EncodeOption = codec.EncodeOption

// WithCRC32 requests a CRC32 checksum over the payload (verified on Decode).
func WithCRC32() codec.EncodeOption {
	return codec.WithCRC32()
}

// NewObject creates an empty, identity-bearing Object.
func NewObject() *value.Object {
	return value.NewObject()
}

// NewArray creates an empty, identity-bearing Array with the given capacity hint.
func NewArray(capacity int) *value.Array {
	return value.NewArray(capacity)
}

// Archive wraps an already-encoded JSBON stream in a compressed, checksummed
// envelope (see the archive package). It is independent of Encode's own
// optional CRC32: an archived stream can carry both.
func Archive(jsbonStream []byte, compression format.CompressionType) ([]byte, error) {
	return archive.Write(jsbonStream, compression)
}

// ArchiveWithStats behaves like Archive but also reports the compression
// achieved, as a compress.CompressionStats, for callers that want to log or
// export space savings.
func ArchiveWithStats(jsbonStream []byte, compression format.CompressionType) ([]byte, compress.CompressionStats, error) {
	return archive.WriteWithStats(jsbonStream, compression)
}

// Unarchive reverses Archive, returning the JSBON stream it wrapped.
func Unarchive(archived []byte) ([]byte, error) {
	return archive.Read(archived)
}
