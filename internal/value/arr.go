package value

type ArrValue []Value

func Arr(args ...any) ArrValue {
	res := make(ArrValue, len(args))
	for i, arg := range args {
		res[i] = New(arg)
	}
	return res
}

func (v ArrValue) Type() ValueType {
	return ArrType
}

func IsArr(v Value) bool {
	return v.Type() == ArrType
}

func (a ArrValue) Cast(t ValueType) Value {
	switch t {
	case BoolType:
		return Bool(len(a) > 0)
	case NumType:
		return arrToNum(a)
	case StrType:
		return Str(ToString(a))
	case ArrType:
		return a
	}
	return Null()
}

// arrToNum implements the array branch of spec 4.3.2's toNumber: an
// empty array is 0, a single element of array/null/number/string
// coerces through that element, anything else (including a single
// bool, or more than one element) fails to Null.
func arrToNum(a ArrValue) Value {
	if len(a) == 0 {
		return NumFromInt(0)
	}
	if len(a) != 1 {
		return Null()
	}
	switch a[0].Type() {
	case ArrType, NullType, NumType, StrType:
		return a[0].Cast(NumType)
	default:
		return Null()
	}
}

// String renders the array the way spec 4.3.2's toString does:
// recursive toString of each element, comma-joined.
func (a ArrValue) String() string {
	return ToString(a)
}
