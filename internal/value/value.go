// Package value implements the JsonLogic engine's value-semantics
// subsystem: the tagged union of JSON-shaped values and the
// JS-flavoured coercion, equality, ordering and truthiness rules the
// rest of the engine is built on.
package value

import "reflect"

// Value is the engine's internal representation of a JSON value. All
// equality, ordering, and coercion operations are pure functions of
// Values; nothing in this package mutates a Value in place.
type Value interface {
	// Type reports the dynamic kind of the value, to simplify type
	// switches elsewhere in the engine.
	Type() ValueType
	// Cast performs a cheap, single-step JS-style coercion to another
	// kind. It never fails: unrepresentable coercions return Null().
	// Callers that need to detect coercion failure (e.g. a numeric
	// string that doesn't parse) use ToNumber/ParseFloatStrict instead.
	Cast(ValueType) Value
}

// ValueType enumerates the dynamic kinds a Value can hold.
type ValueType int

const (
	NullType ValueType = iota
	BoolType
	NumType
	StrType
	ArrType
	ObjType
)

func (t ValueType) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case NumType:
		return "number"
	case StrType:
		return "string"
	case ArrType:
		return "array"
	case ObjType:
		return "object"
	default:
		return "<unknown>"
	}
}

// New converts an arbitrary Go value into a Value, the way a decoded
// encoding/json document (map[string]interface{}, []interface{},
// float64, ...) arrives at the engine boundary.
func New(a any) Value {
	if a == nil {
		return Null()
	}
	switch v := a.(type) {
	case Value:
		return v
	case map[string]any:
		return objFromAny(v)
	case []any:
		return arrFromAny(v)
	default:
		return fromAny(a)
	}
}

func objFromAny(m map[string]any) ObjValue {
	res := make(ObjValue, len(m))
	for k, v := range m {
		res[k] = New(v)
	}
	return res
}

func arrFromAny(a []any) ArrValue {
	res := make(ArrValue, len(a))
	for i, v := range a {
		res[i] = New(v)
	}
	return res
}

func fromAny(a any) Value {
	ref := reflect.ValueOf(a)
	switch {
	case ref.CanInt():
		return NumFromInt(ref.Int())
	case ref.CanUint():
		return NumFromInt(int64(ref.Uint()))
	case ref.CanFloat():
		return NumFromFloat(ref.Float())
	case ref.Kind() == reflect.Bool:
		return Bool(ref.Bool())
	case ref.Kind() == reflect.String:
		return Str(ref.String())
	default:
		return Null()
	}
}

// ToAny converts a Value back to the plain Go representation
// encoding/json.Unmarshal would have produced for it
// (map[string]interface{}, []interface{}, float64, ...), for callers
// at the package boundary who don't want to depend on this package's
// Value variants directly.
func ToAny(v Value) any {
	switch t := v.(type) {
	case NullValue:
		return nil
	case BoolValue:
		return bool(t)
	case NumValue:
		return t.Float()
	case StrValue:
		return string(t)
	case ArrValue:
		res := make([]any, len(t))
		for i, elem := range t {
			res[i] = ToAny(elem)
		}
		return res
	case ObjValue:
		res := make(map[string]any, len(t))
		for k, elem := range t {
			res[k] = ToAny(elem)
		}
		return res
	default:
		return nil
	}
}
