package main

import (
	"time"

	"github.com/jsbon/jsbon/value"
)

// fromJSON turns the generic tree encoding/json produces (map[string]any,
// []any, float64, string, bool, nil) into the value package's closed type
// set, so it can be passed to jsbon.Encode.
func fromJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		obj := value.NewObject()
		for k, val := range t {
			obj.Set(k, fromJSON(val))
		}

		return obj
	case []any:
		arr := value.NewArray(len(t))
		for _, val := range t {
			arr.Append(fromJSON(val))
		}

		return arr
	default:
		return v
	}
}

// toJSON turns a decoded jsbon value back into a tree encoding/json can
// marshal. Cyclic graphs cannot round-trip through this conversion (JSON has
// no notion of shared identity); encountering one the second time emits a
// placeholder string instead of recursing forever.
func toJSON(v any, seen map[any]bool) any {
	if seen == nil {
		seen = make(map[any]bool)
	}

	switch t := v.(type) {
	case *value.Object:
		if seen[t] {
			return "<cycle>"
		}
		seen[t] = true

		out := make(map[string]any, t.Len())
		t.Range(func(key string, val any) bool {
			out[key] = toJSON(val, seen)
			return true
		})

		return out
	case *value.Array:
		if seen[t] {
			return "<cycle>"
		}
		seen[t] = true

		out := make([]any, 0, t.Len())
		for _, item := range t.Items() {
			out = append(out, toJSON(item, seen))
		}

		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case []byte:
		return t // encoding/json base64-encodes []byte natively
	default:
		if t == value.Undefined {
			return nil
		}

		return t
	}
}
