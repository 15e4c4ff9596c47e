package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTable_NameTable_FirstSeenOrder(t *testing.T) {
	tbl := NewEncodeTable(false)

	assert.Equal(t, uint32(0), tbl.Intern("id"))
	assert.Equal(t, uint32(1), tbl.Intern("name"))
	assert.Equal(t, uint32(0), tbl.Intern("id")) // repeat reuses index
	assert.Equal(t, uint32(2), tbl.Intern("tags"))

	assert.Equal(t, []string{"id", "name", "tags"}, tbl.Entries())
	assert.Equal(t, 3, tbl.Len())
}

func TestEncodeTable_ValueTable_ReservesEmptyAtZero(t *testing.T) {
	tbl := NewEncodeTable(true)

	assert.Equal(t, uint32(0), tbl.Intern(""))
	assert.Equal(t, uint32(0), tbl.Intern("")) // still 0, no growth

	assert.Equal(t, uint32(1), tbl.Intern("hello"))
	assert.Equal(t, uint32(2), tbl.Intern("world"))
	assert.Equal(t, uint32(1), tbl.Intern("hello"))

	// Entries() must not include the implicit empty-string slot.
	assert.Equal(t, []string{"hello", "world"}, tbl.Entries())
	assert.Equal(t, 2, tbl.Len())
}

func TestDecodeTable_RoundTrip_NameTable(t *testing.T) {
	enc := NewEncodeTable(false)
	enc.Intern("a")
	enc.Intern("b")
	enc.Intern("c")

	dec := NewDecodeTable(enc.Entries(), false)

	for i, want := range []string{"a", "b", "c"} {
		got, ok := dec.Lookup(uint32(i))
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := dec.Lookup(3)
	assert.False(t, ok)
}

func TestDecodeTable_RoundTrip_ValueTable(t *testing.T) {
	enc := NewEncodeTable(true)
	enc.Intern("")
	enc.Intern("foo")
	enc.Intern("bar")

	dec := NewDecodeTable(enc.Entries(), true)

	got, ok := dec.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "", got)

	got, ok = dec.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "foo", got)

	got, ok = dec.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "bar", got)

	assert.Equal(t, 3, dec.Len())
}

func TestEncodeTable_HashCollision_DistinctStringsKeptDistinct(t *testing.T) {
	// Two distinct strings cannot be merged even if their hashes happened to
	// collide; the lookup compares the stored string, not just the hash.
	tbl := NewEncodeTable(false)

	a := tbl.Intern("alpha")
	b := tbl.Intern("beta")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, tbl.Intern("alpha"))
	assert.Equal(t, b, tbl.Intern("beta"))
}
