package value

type ObjValue map[string]Value

func Obj(args map[string]any) ObjValue {
	res := make(ObjValue, len(args))
	for k, v := range args {
		res[k] = New(v)
	}
	return res
}

func (o ObjValue) Type() ValueType {
	return ObjType
}

func IsObj(v Value) bool {
	return v.Type() == ObjType
}

func (o ObjValue) Cast(t ValueType) Value {
	switch t {
	case BoolType:
		// Objects are always truthy (spec 4.3.1).
		return True()
	case StrType:
		return Str("[object Object]")
	case ObjType:
		return o
	default:
		// Number coercion of a non-array object always fails.
		return Null()
	}
}
