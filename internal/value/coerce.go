package value

import "strings"

// Truthy implements spec 4.3.1: JS-style truthiness.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case BoolValue:
		return bool(t)
	case NullValue:
		return false
	case NumValue:
		return t.Float() != 0
	case StrValue:
		return len(t) > 0
	case ArrValue:
		return len(t) > 0
	case ObjValue:
		return true
	default:
		return false
	}
}

// ToString implements spec 4.3.2's toString.
func ToString(v Value) string {
	switch t := v.(type) {
	case NullValue:
		return "null"
	case BoolValue:
		if t {
			return "true"
		}
		return "false"
	case NumValue:
		return t.String()
	case StrValue:
		return string(t)
	case ArrValue:
		var sb strings.Builder
		for i, elem := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(ToString(elem))
		}
		return sb.String()
	case ObjValue:
		return "[object Object]"
	default:
		return ""
	}
}

// ToNumber implements spec 4.3.2's toNumber. The bool result is false
// when the value has no sensible numeric coercion (a non-numeric
// string, any object, a multi-element array, or a one-element array
// whose element is a bool, an object, or doesn't itself coerce).
func ToNumber(v Value) (NumValue, bool) {
	switch t := v.(type) {
	case NullValue:
		return NumFromInt(0), true
	case BoolValue:
		if t {
			return NumFromInt(1), true
		}
		return NumFromInt(0), true
	case NumValue:
		return t, true
	case StrValue:
		n := t.Cast(NumType)
		num, ok := n.(NumValue)
		return num, ok
	case ArrValue:
		n := arrToNum(t)
		num, ok := n.(NumValue)
		return num, ok
	case ObjValue:
		return NumValue{}, false
	default:
		return NumValue{}, false
	}
}

// ParseFloatStrict implements spec 4.3.2's parseFloat: identical to
// ToNumber except that null fails instead of coercing to 0 (used by
// the `+` and `*` operators).
func ParseFloatStrict(v Value) (NumValue, bool) {
	if IsNull(v) {
		return NumValue{}, false
	}
	return ToNumber(v)
}

// StrictEqual implements spec 4.3.3. Values of different dynamic
// types are never strictly equal. Two distinct array or object values
// are never strictly equal (reference identity isn't observable on
// plain data values).
func StrictEqual(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case BoolValue:
		bv := b.(BoolValue)
		return av == bv
	case NumValue:
		bv := b.(NumValue)
		return numEqual(av, bv)
	case StrValue:
		bv := b.(StrValue)
		return av == bv
	case ArrValue, ObjValue:
		return false
	default:
		return false
	}
}

// AbstractEqual implements spec 4.3.4, the ECMA "==" algorithm.
func AbstractEqual(a, b Value) bool {
	if a.Type() == b.Type() {
		return StrictEqual(a, b)
	}

	// null is only ever abstractly equal to null, which is the
	// same-type case handled above.
	if IsNull(a) || IsNull(b) {
		return false
	}

	// Non-array objects never compare equal to anything.
	if _, ok := a.(ObjValue); ok {
		return false
	}
	if _, ok := b.(ObjValue); ok {
		return false
	}

	switch av := a.(type) {
	case NumValue:
		if sv, ok := b.(StrValue); ok {
			return numberStringEqual(av, sv)
		}
		if bv, ok := b.(BoolValue); ok {
			return AbstractEqual(a, bv.Cast(NumType))
		}
		if arr, ok := b.(ArrValue); ok {
			return arrayNumberEqual(arr, av)
		}
	case StrValue:
		if nv, ok := b.(NumValue); ok {
			return numberStringEqual(nv, av)
		}
		if bv, ok := b.(BoolValue); ok {
			return AbstractEqual(a, bv.Cast(NumType))
		}
		if arr, ok := b.(ArrValue); ok {
			return ToString(arr) == string(av)
		}
	case BoolValue:
		return AbstractEqual(av.Cast(NumType), b)
	case ArrValue:
		switch bv := b.(type) {
		case StrValue:
			return ToString(av) == string(bv)
		case NumValue:
			return arrayNumberEqual(av, bv)
		case BoolValue:
			return AbstractEqual(a, bv.Cast(NumType))
		}
	}
	return false
}

func numberStringEqual(n NumValue, s StrValue) bool {
	sn, ok := ToNumber(s)
	if !ok {
		return false
	}
	return numEqual(sn, n)
}

func arrayNumberEqual(arr ArrValue, n NumValue) bool {
	return numberStringEqual(n, Str(ToString(arr)))
}
