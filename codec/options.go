package codec

import "github.com/jsbon/jsbon/internal/options"

// encodeConfig holds the resolved state of an Encode call's options.
type encodeConfig struct {
	crc32 bool
}

// EncodeOption configures a single Encode call (spec §6: encode(value, options)).
type EncodeOption = options.Option[*encodeConfig]

// WithCRC32 requests a CRC32 over the payload, written right after the
// header byte and flagged by the header's OptionCRC32 bit. Unknown/future options are silently ignored by callers
// that don't recognize them, per spec §6.
func WithCRC32() EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		c.crc32 = true
	})
}
