// Package compress provides the compression codecs the archive package uses
// to wrap a complete JSBON stream in an outer envelope (SPEC_FULL.md §4.1).
//
// The core JSBON payload is never compressed internally — every byte in it
// is already meaningful to the decoder's offset bookkeeping. Compression, if
// wanted, applies to the finished encode() output as a whole, as an opaque
// second pass a caller opts into explicitly.
//
// # Architecture
//
// Three small interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
// **NoOp** (format.CompressionNone) — returns the input unchanged. Use when
// the payload is already dense (typical for JSBON, which has no padding) or
// when archive-layer CPU cost isn't worth paying.
//
// **Zstandard** (format.CompressionZstd) — best ratio, moderate speed. Good
// default for cold storage or network transmission of archived streams.
//
// **S2** (format.CompressionS2), a Snappy-compatible format from
// klauspost/compress — fast in both directions, modest ratio. Good for
// latency-sensitive archive round-trips.
//
// **LZ4** (format.CompressionLZ4) — very fast decompression, moderate
// compression. Good when archives are written once and read often.
//
// # Factory
//
// CreateCodec and GetCodec resolve a format.CompressionType to a Codec
// instance; archive.Write (CreateCodec) and archive.Read (GetCodec) use these
// so a caller only names the algorithm,
// never constructs a codec directly.
//
// # Thread safety
//
// All codec implementations here are safe for concurrent use; pooled
// internal state (LZ4's block compressor, Zstd's encoder/decoder) is
// returned to a sync.Pool after each call rather than held per-instance.
package compress
