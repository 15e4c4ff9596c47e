// Package value defines the Go representation of a JSBON value (spec §2):
// a dynamic, tagged-union model surfaced through the empty interface, with
// two identity-bearing container types (Object, Array) and a small set of
// concrete Go types for everything else.
//
// codec.Encoder accepts any value built from this closed set:
//
//	nil                  -> NULL
//	Undefined             -> UNDEFINED
//	bool                  -> FALSE/TRUE
//	int64                 -> INT8/INT16/INT32/NUMBER, narrowest that fits
//	int, int8/16/32       -> as int64
//	uint, uint8/16/32/64  -> as int64 (uint64 above MaxInt64 as float64)
//	float64               -> NUMBER, or narrowed to an INT tag if integral
//	float32               -> as float64
//	string                -> STRING
//	time.Time             -> DATE
//	[]byte                -> BYTES
//	*Object, *Array       -> OBJECT/ARRAY, identity-tracked
//	map[string]any        -> OBJECT, treated as a fresh non-identity value
//	[]any                 -> ARRAY, treated as a fresh non-identity value
//	PlainMapper           -> encoded as the *Object its ToPlainMapping returns
//
// Any other static Go type is rejected with errs.ErrUnsupportedType.
package value

// Undefined is the sentinel Go value for the wire's UNDEFINED tag. It is
// distinct from nil, which maps to NULL.
type undefined struct{}

// Undefined is the single instance representing the UNDEFINED tag.
var Undefined = undefined{}

// Object is an ordered key/value mapping with reference identity: two
// Objects built separately are never the same value even if their contents
// are equal, matching the host-language object-identity semantics the wire
// format's REFERENCE tag exists to preserve (spec §3).
type Object struct {
	keys   []string
	values []any
	index  map[string]int
}

// NewObject creates an empty Object ready for Set calls.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or updates key. First-seen key order is preserved; updating an
// existing key does not move it.
func (o *Object) Set(key string, v any) *Object {
	if i, ok := o.index[key]; ok {
		o.values[i] = v
		return o
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)

	return o
}

// Get returns the value stored under key, and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.values[i], true
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the object's keys in insertion order. The returned slice
// aliases internal state and must not be mutated.
func (o *Object) Keys() []string {
	return o.keys
}

// Range calls fn for every key/value pair in insertion order, stopping early
// if fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	for i, k := range o.keys {
		if !fn(k, o.values[i]) {
			return
		}
	}
}

// Array is an ordered, identity-bearing list of values, the wire's ARRAY
// container (spec §3).
type Array struct {
	items []any
}

// NewArray creates an empty Array, optionally pre-sized via capacity.
func NewArray(capacity int) *Array {
	return &Array{items: make([]any, 0, capacity)}
}

// Append adds v to the end of the array and returns the array for chaining.
func (a *Array) Append(v any) *Array {
	a.items = append(a.items, v)
	return a
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the element at index i.
func (a *Array) At(i int) any {
	return a.items[i]
}

// Items returns the array's elements in order. The returned slice aliases
// internal state and must not be mutated.
func (a *Array) Items() []any {
	return a.items
}

// PlainMapper is implemented by Go types that know how to project themselves
// into a plain *Object before encoding, the Go expression of the wire
// format's plain-mapping capability trait (spec §2, Design Notes): any type
// exposing a deterministic, enumerable, acyclic key/value view can be
// serialized without the encoder needing to understand its concrete type.
type PlainMapper interface {
	ToPlainMapping() *Object
}
