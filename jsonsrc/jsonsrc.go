// Package jsonsrc bridges github.com/mcvoid/json's table-driven JSON
// parser into this engine's internal value.Value sum type. It exists
// because spec.md scopes JSON text parsing out of the engine itself
// ("the engine assumes a JSON value type supplied by an external
// library and does not itself parse JSON text") — this is that
// external library, wired in for callers who have raw JSON text
// rather than an already-decoded Go value.
package jsonsrc

import (
	jsonpkg "github.com/mcvoid/json"

	"github.com/growthbook/jsonlogic-go/internal/value"
)

// ParseString parses s as JSON text and converts the result into the
// engine's Value representation.
func ParseString(s string) (value.Value, error) {
	v, err := jsonpkg.ParseString(s)
	if err != nil {
		return nil, err
	}
	return FromJSON(v), nil
}

// ParseBytes is ParseString for a []byte source.
func ParseBytes(b []byte) (value.Value, error) {
	v, err := jsonpkg.ParseBytes(b)
	if err != nil {
		return nil, err
	}
	return FromJSON(v), nil
}

// FromJSON recursively converts an already-parsed *jsonpkg.Value into
// this engine's Value sum type.
func FromJSON(v *jsonpkg.Value) value.Value {
	switch v.Type() {
	case jsonpkg.Null:
		return value.Null()
	case jsonpkg.Boolean:
		b, _ := v.AsBoolean()
		return value.Bool(b)
	case jsonpkg.Integer:
		i, _ := v.AsInteger()
		return value.NumFromInt(i)
	case jsonpkg.Number:
		n, _ := v.AsNumber()
		return value.NumFromFloat(n)
	case jsonpkg.String:
		s, _ := v.AsString()
		return value.Str(s)
	case jsonpkg.Array:
		elems, _ := v.AsArray()
		res := make(value.ArrValue, len(elems))
		for i, e := range elems {
			res[i] = FromJSON(e)
		}
		return res
	case jsonpkg.Object:
		obj, _ := v.AsObject()
		res := make(value.ObjValue, len(obj))
		for k, e := range obj {
			res[k] = FromJSON(e)
		}
		return res
	default:
		return value.Null()
	}
}
