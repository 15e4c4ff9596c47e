package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetGet_PreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", 1).Set("a", 2).Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, obj.Keys())

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_Set_UpdateDoesNotReorder(t *testing.T) {
	obj := NewObject()
	obj.Set("x", 1).Set("y", 2)
	obj.Set("x", 99)

	assert.Equal(t, []string{"x", "y"}, obj.Keys())
	v, _ := obj.Get("x")
	assert.Equal(t, 99, v)
}

func TestObject_Range_StopsEarly(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1).Set("b", 2).Set("c", 3)

	var seen []string
	obj.Range(func(key string, v any) bool {
		seen = append(seen, key)
		return key != "b"
	})

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestObject_Identity_DistinctPointers(t *testing.T) {
	a := NewObject().Set("k", 1)
	b := NewObject().Set("k", 1)

	assert.NotSame(t, a, b)
}

func TestArray_AppendAt(t *testing.T) {
	arr := NewArray(0)
	arr.Append("x").Append(42).Append(nil)

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, "x", arr.At(0))
	assert.Equal(t, 42, arr.At(1))
	assert.Nil(t, arr.At(2))
	assert.Equal(t, []any{"x", 42, nil}, arr.Items())
}

type customType struct {
	name string
}

func (c customType) ToPlainMapping() *Object {
	return NewObject().Set("name", c.name)
}

func TestPlainMapper_Implemented(t *testing.T) {
	var m PlainMapper = customType{name: "widget"}

	obj := m.ToPlainMapping()
	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, "widget", v)
}
