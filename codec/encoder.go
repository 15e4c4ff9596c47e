package codec

import (
	"fmt"
	"hash/crc32"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/jsbon/jsbon/bytestream"
	"github.com/jsbon/jsbon/endian"
	"github.com/jsbon/jsbon/errs"
	"github.com/jsbon/jsbon/format"
	"github.com/jsbon/jsbon/internal/intern"
	"github.com/jsbon/jsbon/internal/options"
	"github.com/jsbon/jsbon/internal/varint"
	"github.com/jsbon/jsbon/value"
)

// Encoder serializes a single value.Object/value.Array graph (or any
// supported primitive) into a JSBON byte stream (spec §4.1).
//
// An Encoder is single-use: create one per Encode call via NewEncoder, or
// call the package-level Encode helper which does this for you.
type Encoder struct {
	payload   *bytestream.Writer
	names     *intern.EncodeTable
	strings   *intern.EncodeTable
	identity  map[any]int
	hasCycle  bool
}

// NewEncoder creates an Encoder with empty interning tables and identity map.
func NewEncoder() *Encoder {
	return &Encoder{
		payload:  bytestream.NewWriter(endian.GetBigEndianEngine()),
		names:    intern.NewEncodeTable(false),
		strings:  intern.NewEncodeTable(true),
		identity: make(map[any]int),
	}
}

// Encode serializes v using opts, returning a fresh byte buffer.
func Encode(v any, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	enc := NewEncoder()
	defer enc.payload.Release()

	if err := enc.encodeValue(v); err != nil {
		return nil, err
	}

	return enc.finish(cfg.crc32), nil
}

// finish assembles header || tables || payload into the final buffer.
func (enc *Encoder) finish(wantCRC bool) []byte {
	payload := enc.payload.Bytes()

	header := format.Header{
		Version:  format.MajorVersion,
		NoCycle:  !enc.hasCycle,
		HasCRC32: wantCRC,
	}
	if wantCRC {
		header.CRC32 = crc32.ChecksumIEEE(payload)
	}

	hw := bytestream.NewWriter(endian.GetBigEndianEngine())
	defer hw.Release()

	hw.WriteByte(header.Byte0())
	if wantCRC {
		hw.WriteUint32(header.CRC32)
	}

	writeTable(hw, enc.names.Entries())
	writeTable(hw, enc.strings.Entries())

	out := make([]byte, 0, hw.Pos()+len(payload))
	out = append(out, hw.Bytes()...)
	out = append(out, payload...)

	return out
}

func writeTable(w *bytestream.Writer, entries []string) {
	w.WriteBytes(varint.Append(nil, uint32(len(entries))))
	for _, s := range entries {
		w.WriteCString(s)
	}
}

// encodeValue dispatches v by its concrete Go type (value.go's closed set)
// and writes its tag + body to the payload.
func (enc *Encoder) encodeValue(v any) error {
	switch t := v.(type) {
	case nil:
		enc.payload.WriteByte(byte(format.TagNull))
		return nil
	case value.PlainMapper:
		return enc.encodeValue(t.ToPlainMapping())
	case bool:
		if t {
			enc.payload.WriteByte(byte(format.TagTrue))
		} else {
			enc.payload.WriteByte(byte(format.TagFalse))
		}
		return nil
	case int64:
		enc.encodeInt(t)
		return nil
	case int:
		enc.encodeInt(int64(t))
		return nil
	case int8:
		enc.encodeInt(int64(t))
		return nil
	case int16:
		enc.encodeInt(int64(t))
		return nil
	case int32:
		enc.encodeInt(int64(t))
		return nil
	case uint:
		enc.encodeInt(int64(t))
		return nil
	case uint8:
		enc.encodeInt(int64(t))
		return nil
	case uint16:
		enc.encodeInt(int64(t))
		return nil
	case uint32:
		enc.encodeInt(int64(t))
		return nil
	case uint64:
		if t > math.MaxInt64 {
			enc.encodeFloat(float64(t))
			return nil
		}
		enc.encodeInt(int64(t))
		return nil
	case float32:
		enc.encodeFloat(float64(t))
		return nil
	case float64:
		enc.encodeFloat(t)
		return nil
	case string:
		return enc.encodeString(t)
	case time.Time:
		enc.payload.WriteByte(byte(format.TagDate))
		enc.payload.WriteFloat64(float64(t.UnixMilli()))
		return nil
	case []byte:
		enc.payload.WriteByte(byte(format.TagBytes))
		enc.payload.WriteBytes(varint.Append(nil, uint32(len(t))))
		enc.payload.WriteBytes(t)
		return nil
	case *value.Object:
		return enc.encodeObject(t)
	case *value.Array:
		return enc.encodeArray(t)
	case map[string]any:
		return enc.encodeMap(t)
	case []any:
		return enc.encodeSlice(t)
	default:
		if t == value.Undefined {
			enc.payload.WriteByte(byte(format.TagUndefined))
			return nil
		}

		return fmt.Errorf("%w: %T", errs.ErrUnsupportedType, v)
	}
}

func (enc *Encoder) encodeString(s string) error {
	idx := enc.strings.Intern(s)
	enc.payload.WriteByte(byte(format.TagString))
	enc.payload.WriteBytes(varint.Append(nil, idx))

	return nil
}

// encodeInt picks the narrowest of INT8/INT16/INT32 that represents v, or
// falls through to NUMBER if v lies outside signed-32-bit range (spec §4.1).
func (enc *Encoder) encodeInt(v int64) {
	switch {
	case v >= -128 && v <= 127:
		enc.payload.WriteByte(byte(format.TagInt8))
		enc.payload.WriteInt8(int8(v))
	case v >= -32768 && v <= 32767:
		enc.payload.WriteByte(byte(format.TagInt16))
		enc.payload.WriteInt16(int16(v))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		enc.payload.WriteByte(byte(format.TagInt32))
		enc.payload.WriteInt32(int32(v))
	default:
		enc.payload.WriteByte(byte(format.TagNumber))
		enc.payload.WriteFloat64(float64(v))
	}
}

// encodeFloat narrows an integral, in-range float64 down to an INT tag; all
// other floats (including NaN/±Inf) are emitted as NUMBER verbatim.
func (enc *Encoder) encodeFloat(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		enc.payload.WriteByte(byte(format.TagNumber))
		enc.payload.WriteFloat64(v)

		return
	}

	if v >= math.MinInt32 && v <= math.MaxInt32 {
		enc.encodeInt(int64(v))
		return
	}

	enc.payload.WriteByte(byte(format.TagNumber))
	enc.payload.WriteFloat64(v)
}

// registerOrReference checks the identity map for key (a *value.Object or
// *value.Array pointer). If already present it emits a back-edge and returns
// true; otherwise it registers key at the current tag-byte position and
// returns false, meaning the caller must emit the value by-value.
func (enc *Encoder) registerOrReference(key any) bool {
	if pos, ok := enc.identity[key]; ok {
		enc.hasCycle = true
		enc.payload.WriteByte(byte(format.TagReference))
		enc.payload.WriteBytes(varint.Append(nil, uint32(pos)))

		return true
	}

	enc.identity[key] = enc.payload.Pos()

	return false
}

func (enc *Encoder) encodeObject(obj *value.Object) error {
	if enc.registerOrReference(obj) {
		return nil
	}

	enc.payload.WriteByte(byte(format.TagObject))

	type kv struct {
		key string
		val any
	}

	kept := make([]kv, 0, obj.Len())
	obj.Range(func(key string, v any) bool {
		if isFunc(v) {
			return true
		}
		kept = append(kept, kv{key, v})

		return true
	})

	enc.payload.WriteBytes(varint.Append(nil, uint32(len(kept))))

	for _, e := range kept {
		idx := enc.names.Intern(e.key)
		enc.payload.WriteBytes(varint.Append(nil, idx))

		if err := enc.encodeValue(e.val); err != nil {
			return err
		}
	}

	return nil
}

func (enc *Encoder) encodeArray(arr *value.Array) error {
	if enc.registerOrReference(arr) {
		return nil
	}

	enc.payload.WriteByte(byte(format.TagArray))
	enc.payload.WriteBytes(varint.Append(nil, uint32(arr.Len())))

	for _, item := range arr.Items() {
		if err := enc.encodeValue(item); err != nil {
			return err
		}
	}

	return nil
}

// encodeMap serializes a plain map[string]any as a fresh, non-identity
// object: Go maps are not comparable, so they can never be registered in the
// identity map and are always emitted by value.
func (enc *Encoder) encodeMap(m map[string]any) error {
	enc.payload.WriteByte(byte(format.TagObject))

	keys := make([]string, 0, len(m))
	for k, v := range m {
		if isFunc(v) {
			continue
		}
		keys = append(keys, k)
	}
	// map[string]any carries no ordering of its own; sort for deterministic
	// output across runs rather than relying on Go's randomized map order.
	sort.Strings(keys)

	enc.payload.WriteBytes(varint.Append(nil, uint32(len(keys))))

	for _, k := range keys {
		idx := enc.names.Intern(k)
		enc.payload.WriteBytes(varint.Append(nil, idx))

		if err := enc.encodeValue(m[k]); err != nil {
			return err
		}
	}

	return nil
}

// encodeSlice serializes a plain []any as a fresh, non-identity array.
func (enc *Encoder) encodeSlice(s []any) error {
	enc.payload.WriteByte(byte(format.TagArray))
	enc.payload.WriteBytes(varint.Append(nil, uint32(len(s))))

	for _, item := range s {
		if err := enc.encodeValue(item); err != nil {
			return err
		}
	}

	return nil
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}

	return reflect.ValueOf(v).Kind() == reflect.Func
}
