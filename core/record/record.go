package record

import (
	"encoding/json"
	"fmt"
	"math"
)

// TagKey is the record key holding the embedded type tag.
const TagKey = "$__type"

// Object is the generic nested key/value representation of one stored
// object. Values are primitives, nested Objects (possibly tagged), or
// sequences of either.
type Object map[string]any

// TypeTag returns the embedded type tag of the object, if present.
// Tags arrive as JSON numbers, so several numeric shapes are accepted.
func (o Object) TypeTag() (uint32, bool) {
	raw, ok := o[TagKey]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		if v < 0 || v > math.MaxUint32 || v != math.Trunc(v) {
			return 0, false
		}
		return uint32(v), true
	case int:
		if v < 0 || int64(v) > math.MaxUint32 {
			return 0, false
		}
		return uint32(v), true
	case int64:
		if v < 0 || v > math.MaxUint32 {
			return 0, false
		}
		return uint32(v), true
	case uint32:
		return v, true
	case json.Number:
		i, err := v.Int64()
		if err != nil || i < 0 || i > math.MaxUint32 {
			return 0, false
		}
		return uint32(i), true
	default:
		return 0, false
	}
}

// AsObject converts a raw nested value into an Object. JSON decoding
// produces map[string]any for nested mappings, so both shapes are handled.
func AsObject(v any) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, true
	case map[string]any:
		return Object(m), true
	default:
		return nil, false
	}
}

// IsTagged reports whether a raw nested value is a mapping carrying a
// type tag.
func IsTagged(v any) bool {
	obj, ok := AsObject(v)
	if !ok {
		return false
	}
	_, ok = obj.TypeTag()
	return ok
}

// DecodeJSON parses one archive dump document into an Object.
func DecodeJSON(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return obj, nil
}
