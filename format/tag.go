// Package format defines the wire-level constants of the JSBON binary codec:
// the per-value tag byte set and the header's version/option bit layout.
//
// Nothing in this package touches I/O; it is the shared vocabulary that both
// codec.Encoder and codec.Decoder dispatch on.
package format

// Tag identifies how a single value is encoded in the payload stream.
type Tag uint8

const (
	TagFalse     Tag = 0x00 // boolean false, no body
	TagTrue      Tag = 0x01 // boolean true, no body
	TagInt8      Tag = 0x02 // i8 body
	TagInt16     Tag = 0x03 // i16 big-endian body
	TagInt32     Tag = 0x04 // i32 big-endian body
	TagNull      Tag = 0x05 // null, no body
	TagUndefined Tag = 0x06 // undefined, no body
	TagReference Tag = 0x07 // count(position) back-edge to an already-materialized container

	// TagUint8/16/32 are accepted on decode for compatibility with extended
	// producers (spec §4.1) but are never emitted by Encoder.
	TagUint8  Tag = 0x12
	TagUint16 Tag = 0x13
	TagUint32 Tag = 0x14

	TagNumber Tag = 0x09 // f64 big-endian body (non-integer or out-of-i32-range finite number)
	TagString Tag = 0x16 // count(value-table index; 0 = empty string)
	TagDate   Tag = 0x20 // f64 big-endian milliseconds since Unix epoch

	TagObject Tag = 0x30 // count(k), then k * (count(nameIndex), value)
	TagArray  Tag = 0x31 // count(length), then length values
	TagBytes  Tag = 0x32 // count(length), then raw bytes
)

// String renders a tag for diagnostics (error messages, test failures).
func (t Tag) String() string {
	switch t {
	case TagFalse:
		return "FALSE"
	case TagTrue:
		return "TRUE"
	case TagInt8:
		return "INT8"
	case TagInt16:
		return "INT16"
	case TagInt32:
		return "INT32"
	case TagNull:
		return "NULL"
	case TagUndefined:
		return "UNDEFINED"
	case TagReference:
		return "REFERENCE"
	case TagUint8:
		return "UINT8"
	case TagUint16:
		return "UINT16"
	case TagUint32:
		return "UINT32"
	case TagNumber:
		return "NUMBER"
	case TagString:
		return "STRING"
	case TagDate:
		return "DATE"
	case TagObject:
		return "OBJECT"
	case TagArray:
		return "ARRAY"
	case TagBytes:
		return "BYTES"
	default:
		return "UNKNOWN"
	}
}
