// Package intern implements the two string tables the wire format uses to
// de-duplicate repeated text: the name table (object keys, 0-indexed) and the
// value table (string values, 1-indexed with index 0 reserved for the empty
// string, spec §4.3). Both share the same encode-time interning and
// decode-time lookup shape; this package implements that shape once.
//
// Deduplication is hash-based, grounded on internal/hash.ID (xxhash64) and
// internal/collision.Tracker's hash-then-verify pattern: a hash match is
// provisional until the stored string is compared byte-for-byte, so two
// distinct strings that collide under xxhash never get merged into one
// table entry.
package intern

import "github.com/jsbon/jsbon/internal/hash"

// EncodeTable interns strings during the encoder's payload pass, assigning
// each distinct string an index in first-seen order.
type EncodeTable struct {
	byHash  map[uint64][]int32 // hash -> indices of strings sharing it
	strings []string           // insertion order, index == table index
	reserve bool               // true for the value table's empty-string slot
}

// NewEncodeTable creates an interning table. When reserveEmpty is true
// (the value table), index 0 is pre-bound to "" and Intern never emits a
// fresh index for the empty string.
func NewEncodeTable(reserveEmpty bool) *EncodeTable {
	t := &EncodeTable{
		byHash:  make(map[uint64][]int32),
		reserve: reserveEmpty,
	}
	if reserveEmpty {
		t.strings = append(t.strings, "")
	}

	return t
}

// Intern returns s's table index, assigning a new one on first occurrence.
func (t *EncodeTable) Intern(s string) uint32 {
	if t.reserve && s == "" {
		return 0
	}

	h := hash.ID(s)
	for _, idx := range t.byHash[h] {
		if t.strings[idx] == s {
			return uint32(idx)
		}
	}

	idx := int32(len(t.strings))
	t.strings = append(t.strings, s)
	t.byHash[h] = append(t.byHash[h], idx)

	return uint32(idx)
}

// Strings returns the table contents in wire order. For a value table this
// includes the reserved empty string at index 0; callers writing the table
// to the stream must skip it (spec §4.3: index 0 is implicit, never stored).
func (t *EncodeTable) Strings() []string {
	return t.strings
}

// Entries returns the strings that must actually be written to the stream:
// the full table, minus the implicit reserved slot if present.
func (t *EncodeTable) Entries() []string {
	if t.reserve {
		return t.strings[1:]
	}

	return t.strings
}

// Len returns the number of entries Entries() would return.
func (t *EncodeTable) Len() int {
	return len(t.Entries())
}

// DecodeTable resolves a string table read from the stream back into the
// index -> string mapping the encoder used.
type DecodeTable struct {
	strings []string
	reserve bool
}

// NewDecodeTable builds a lookup table from entries read off the wire, in
// the same reserveEmpty convention as NewEncodeTable.
func NewDecodeTable(entries []string, reserveEmpty bool) *DecodeTable {
	if !reserveEmpty {
		return &DecodeTable{strings: entries}
	}

	strings := make([]string, 0, len(entries)+1)
	strings = append(strings, "")
	strings = append(strings, entries...)

	return &DecodeTable{strings: strings, reserve: true}
}

// Lookup returns the string at index, or false if index is out of range.
func (t *DecodeTable) Lookup(index uint32) (string, bool) {
	if int(index) >= len(t.strings) {
		return "", false
	}

	return t.strings[index], true
}

// Len returns the number of resolvable indices, including the reserved slot.
func (t *DecodeTable) Len() int {
	return len(t.strings)
}
