package format

// MajorVersion is the only wire major version this package understands.
// It occupies the low nibble of the header's byte 0 (spec §3 invariant 5).
const MajorVersion uint8 = 1

// Header option bits, packed into the high nibble of byte 0 (spec §3 invariant 6).
const (
	// OptionNoCycle asserts the producer emitted no TagReference back-edge to a
	// container. codec.Encoder emits a back-edge for every repeated container,
	// shared or cyclic, so it sets this bit only when no container appears
	// twice. codec.Decoder registers containers whether or not the bit is set.
	OptionNoCycle uint8 = 0x40
	// OptionCRC32 indicates a big-endian uint32 CRC32 of the payload follows byte 0.
	OptionCRC32 uint8 = 0x80

	versionMask uint8 = 0x0F
)

// Header is the fixed leading byte of a JSBON stream plus its optional CRC32
// field. It carries no length/offset bookkeeping of its own — those live in
// the varint-prefixed interning tables that immediately follow it.
type Header struct {
	Version  uint8
	NoCycle  bool
	HasCRC32 bool
	CRC32    uint32 // meaningful only if HasCRC32
}

// Byte0 packs Version/NoCycle/HasCRC32 into the single header byte.
func (h Header) Byte0() byte {
	b := h.Version & versionMask
	if h.NoCycle {
		b |= OptionNoCycle
	}
	if h.HasCRC32 {
		b |= OptionCRC32
	}

	return b
}

// ParseByte0 unpacks the header byte into its version and option flags.
func ParseByte0(b byte) Header {
	return Header{
		Version:  b & versionMask,
		NoCycle:  b&OptionNoCycle != 0,
		HasCRC32: b&OptionCRC32 != 0,
	}
}
