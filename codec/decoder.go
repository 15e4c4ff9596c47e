package codec

import (
	"fmt"
	"hash/crc32"
	"time"

	"github.com/jsbon/jsbon/bytestream"
	"github.com/jsbon/jsbon/endian"
	"github.com/jsbon/jsbon/errs"
	"github.com/jsbon/jsbon/format"
	"github.com/jsbon/jsbon/internal/intern"
	"github.com/jsbon/jsbon/internal/varint"
	"github.com/jsbon/jsbon/value"
)

// Decoder parses a single JSBON byte stream back into a value (spec §4.2).
type Decoder struct {
	data   []byte
	reader *bytestream.Reader
	names  *intern.DecodeTable
	values *intern.DecodeTable
	refs   map[int]any // tag-byte offset -> materialized container
	offset int         // first payload byte, the base for reference resolution
}

// Decode parses data into a value. The returned value is one of value.go's
// closed type set: nil, value.Undefined, bool, int64, float64, string,
// time.Time, []byte, *value.Object, or *value.Array.
func Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errs.ErrInvalidData
	}

	dec := &Decoder{
		data: data,
		refs: make(map[int]any),
	}

	header := format.ParseByte0(data[0])
	if header.Version > format.MajorVersion {
		return nil, fmt.Errorf("%w: version %d", errs.ErrVersionMismatch, header.Version)
	}

	cursor := 1

	var wantCRC uint32
	if header.HasCRC32 {
		if len(data) < cursor+4 {
			return nil, errs.ErrTruncated
		}
		wantCRC = endian.GetBigEndianEngine().Uint32(data[cursor:])
		cursor += 4
	}

	names, n, err := readTable(data, cursor, false)
	if err != nil {
		return nil, err
	}
	cursor = n

	values, n, err := readTable(data, cursor, true)
	if err != nil {
		return nil, err
	}
	cursor = n

	dec.names = names
	dec.values = values
	dec.offset = cursor

	if header.HasCRC32 {
		got := crc32.ChecksumIEEE(data[cursor:])
		if got != wantCRC {
			return nil, errs.ErrChecksumMismatch
		}
	}

	dec.reader = bytestream.NewReader(data[cursor:], endian.GetBigEndianEngine())

	return dec.readValue()
}

// readTable parses a varint count followed by that many NUL-terminated
// strings, returning the resulting lookup table and the cursor after it.
func readTable(data []byte, cursor int, reserveEmpty bool) (*intern.DecodeTable, int, error) {
	count, n, err := varint.Read(data, cursor)
	if err != nil {
		return nil, 0, err
	}
	// Every table entry needs at least one byte (its NUL terminator), so a
	// count exceeding the remaining input can never be satisfied (spec §5).
	if int64(count) > int64(len(data)-cursor-n) {
		return nil, 0, errs.ErrInvalidCount
	}
	cursor += n

	entries := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		idx := -1
		for j := cursor; j < len(data); j++ {
			if data[j] == 0 {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, 0, errs.ErrTruncated
		}

		entries = append(entries, string(data[cursor:idx]))
		cursor = idx + 1
	}

	return intern.NewDecodeTable(entries, reserveEmpty), cursor, nil
}

// tagOffset returns the reader's current position translated into the
// payload-coordinate space the encoder used when recording identities, i.e.
// relative to dec.offset (spec §3 invariant 2).
func (dec *Decoder) tagOffset() int {
	return dec.reader.Pos()
}

func (dec *Decoder) readValue() (any, error) {
	tagByte, err := dec.reader.ReadByte()
	if err != nil {
		return nil, err
	}

	tag := format.Tag(tagByte)

	switch tag {
	case format.TagFalse:
		return false, nil
	case format.TagTrue:
		return true, nil
	case format.TagNull:
		return nil, nil
	case format.TagUndefined:
		return value.Undefined, nil
	case format.TagInt8:
		v, err := dec.reader.ReadInt8()
		return int64(v), err
	case format.TagInt16:
		v, err := dec.reader.ReadInt16()
		return int64(v), err
	case format.TagInt32:
		v, err := dec.reader.ReadInt32()
		return int64(v), err
	case format.TagUint8:
		v, err := dec.reader.ReadByte()
		return int64(v), err
	case format.TagUint16:
		v, err := dec.reader.ReadUint16()
		return int64(v), err
	case format.TagUint32:
		v, err := dec.reader.ReadUint32()
		return int64(v), err
	case format.TagNumber:
		return dec.reader.ReadFloat64()
	case format.TagString:
		return dec.readString()
	case format.TagDate:
		ms, err := dec.reader.ReadFloat64()
		if err != nil {
			return nil, err
		}

		return time.UnixMilli(int64(ms)).UTC(), nil
	case format.TagBytes:
		return dec.readBytes()
	case format.TagObject:
		return dec.readObject()
	case format.TagArray:
		return dec.readArray()
	case format.TagReference:
		return dec.readReference()
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnexpectedTag, tagByte)
	}
}

func (dec *Decoder) readCount() (uint32, error) {
	return dec.reader.ReadVarint()
}

// checkBodyCount rejects a count claiming more elements than the remaining
// input could possibly hold — each element needs at least one more byte —
// so an adversarial huge count fails fast with InvalidCount rather than
// driving an enormous allocation (spec §5).
func (dec *Decoder) checkBodyCount(n uint32) error {
	if int64(n) > int64(dec.reader.Remaining()) {
		return errs.ErrInvalidCount
	}

	return nil
}

func (dec *Decoder) readString() (string, error) {
	idx, err := dec.readCount()
	if err != nil {
		return "", err
	}

	s, ok := dec.values.Lookup(idx)
	if !ok {
		return "", errs.ErrOutOfBoundsReference
	}

	return s, nil
}

func (dec *Decoder) readBytes() ([]byte, error) {
	n, err := dec.readCount()
	if err != nil {
		return nil, err
	}
	if int(n) > dec.reader.Remaining() {
		return nil, errs.ErrTruncated
	}

	return dec.reader.ReadBytes(int(n))
}

func (dec *Decoder) readObject() (*value.Object, error) {
	pos := dec.tagOffset() - 1 // position of the tag byte itself
	obj := value.NewObject()
	dec.refs[pos] = obj

	count, err := dec.readCount()
	if err != nil {
		return nil, err
	}
	if err := dec.checkBodyCount(count); err != nil {
		return nil, err
	}

	for i := uint32(0); i < count; i++ {
		nameIdx, err := dec.readCount()
		if err != nil {
			return nil, err
		}

		name, ok := dec.names.Lookup(nameIdx)
		if !ok {
			return nil, errs.ErrOutOfBoundsReference
		}

		v, err := dec.readValue()
		if err != nil {
			return nil, err
		}

		obj.Set(name, v)
	}

	return obj, nil
}

func (dec *Decoder) readArray() (*value.Array, error) {
	pos := dec.tagOffset() - 1
	arr := value.NewArray(0)
	dec.refs[pos] = arr

	count, err := dec.readCount()
	if err != nil {
		return nil, err
	}
	if err := dec.checkBodyCount(count); err != nil {
		return nil, err
	}

	for i := uint32(0); i < count; i++ {
		v, err := dec.readValue()
		if err != nil {
			return nil, err
		}

		arr.Append(v)
	}

	return arr, nil
}

func (dec *Decoder) readReference() (any, error) {
	pos, err := dec.readCount()
	if err != nil {
		return nil, err
	}

	target, ok := dec.refs[int(pos)]
	if !ok {
		return nil, errs.ErrOutOfBoundsReference
	}

	return target, nil
}

