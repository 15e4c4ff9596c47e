// Package archive implements the outer envelope that wraps a complete
// JSBON stream with compression and an end-to-end integrity check
// (SPEC_FULL.md §4.1), the "callers requiring end-to-end integrity should
// wrap the whole output in an outer checksum" case the core spec's Design
// Notes explicitly invites but leaves out of the codec's own framing.
//
// An archive is layered strictly on top of codec.Encode/codec.Decode: it
// never inspects the JSBON stream it wraps, and the core codec never knows
// it is being archived. The envelope is:
//
//	magic(4="JSBN") version(1) compression(1) outer_crc32(4, big-endian)
//	varint(len(compressed_payload)) compressed_payload
//
// outer_crc32 covers the compressed_payload bytes only, using the same
// IEEE 802.3 algorithm as the core codec's payload CRC32 (hash/crc32),
// computed independently of — and in addition to — any CRC32 the inner
// JSBON stream itself carries.
package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/jsbon/jsbon/compress"
	"github.com/jsbon/jsbon/errs"
	"github.com/jsbon/jsbon/format"
	"github.com/jsbon/jsbon/internal/varint"
)

var magic = [4]byte{'J', 'S', 'B', 'N'}

// archiveVersion is independent of format.MajorVersion: it versions the
// envelope, not the JSBON stream it carries.
const archiveVersion uint8 = 1

// Write wraps a complete JSBON stream (as produced by codec.Encode) in an
// envelope compressed with the given algorithm.
func Write(jsbonStream []byte, compression format.CompressionType) ([]byte, error) {
	out, _, err := WriteWithStats(jsbonStream, compression)
	return out, err
}

// WriteWithStats behaves like Write but also reports the compression
// achieved, for callers that want to log or export space savings.
func WriteWithStats(jsbonStream []byte, compression format.CompressionType) ([]byte, compress.CompressionStats, error) {
	// CreateCodec builds a fresh Codec per call, matching the encode side's
	// own one-codec-per-operation lifetime (the decode side uses the pooled
	// GetCodec instead, see Read).
	codec, err := compress.CreateCodec(compression, "archive")
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	compressed, err := codec.Compress(jsbonStream)
	if err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("archive: compress: %w", err)
	}

	stats := compress.CompressionStats{
		Algorithm:      compression,
		OriginalSize:   int64(len(jsbonStream)),
		CompressedSize: int64(len(compressed)),
	}
	stats.Ratio = stats.CompressionRatio()

	crc := crc32.ChecksumIEEE(compressed)

	out := make([]byte, 0, 4+1+1+4+varint.MaxBytes+len(compressed))
	out = append(out, magic[:]...)
	out = append(out, archiveVersion, byte(compression))
	out = binary.BigEndian.AppendUint32(out, crc)
	out = varint.Append(out, uint32(len(compressed)))
	out = append(out, compressed...)

	return out, stats, nil
}

// Read unwraps an archive envelope, verifying its CRC32 and returning the
// JSBON stream it carries, ready for codec.Decode.
func Read(archived []byte) ([]byte, error) {
	if len(archived) < 4+1+1+4 {
		return nil, errs.ErrTruncated
	}
	if !bytes.Equal(archived[:4], magic[:]) {
		return nil, fmt.Errorf("%w: bad archive magic", errs.ErrInvalidData)
	}

	version := archived[4]
	if version > archiveVersion {
		return nil, fmt.Errorf("%w: archive version %d", errs.ErrVersionMismatch, version)
	}

	compression := format.CompressionType(archived[5])
	wantCRC := binary.BigEndian.Uint32(archived[6:10])

	length, n, err := varint.Read(archived, 10)
	if err != nil {
		return nil, err
	}
	start := 10 + n

	if int64(length) > int64(len(archived)-start) {
		return nil, errs.ErrInvalidCount
	}

	compressed := archived[start : start+int(length)]

	if got := crc32.ChecksumIEEE(compressed); got != wantCRC {
		return nil, errs.ErrChecksumMismatch
	}

	// GetCodec returns a pooled, stateless decompressor (no per-call
	// construction options to thread through), matching the decode side's
	// own codec acquisition pattern.
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	jsbonStream, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("archive: decompress: %w", err)
	}

	return jsbonStream, nil
}
