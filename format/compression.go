package format

// CompressionType identifies the outer-envelope compression algorithm an
// archive stream was wrapped with (SPEC_FULL.md §4.1). It has no meaning
// inside the core JSBON payload, which is never compressed internally.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZstd CompressionType = 1
	CompressionS2   CompressionType = 2
	CompressionLZ4  CompressionType = 3
)

// String renders a compression type for diagnostics.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
