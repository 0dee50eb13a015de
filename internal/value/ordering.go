package value

// Less implements spec 4.3.5's relational `<`. It is intentionally
// not a three-way compare: a failed numeric coercion degrades to
// false rather than to a distinct "incomparable" state, matching the
// spec's wording ("if either fails, false").
func Less(a, b Value) bool {
	if IsNull(a) && IsNull(b) {
		return false
	}
	if _, ok := a.(ObjValue); ok {
		return false
	}
	if _, ok := b.(ObjValue); ok {
		return false
	}

	aBool, aIsBool := a.(BoolValue)
	bBool, bIsBool := b.(BoolValue)
	if aIsBool && bIsBool {
		return !bool(aBool) && bool(bBool)
	}

	aStr, aIsStr := a.(StrValue)
	bStr, bIsStr := b.(StrValue)
	if aIsStr && bIsStr {
		return aStr < bStr
	}

	_, aIsArr := a.(ArrValue)
	_, bIsArr := b.(ArrValue)
	if (aIsArr && bIsArr) || (aIsArr && bIsStr) || (aIsStr && bIsArr) {
		return ToString(a) < ToString(b)
	}

	an, aok := ToNumber(a)
	bn, bok := ToNumber(b)
	if !aok || !bok {
		return false
	}
	return numLess(an, bn)
}

// LessOrEqual, Greater and GreaterOrEqual are derived exactly per
// spec 4.3.5: `a <= b := (a < b) || abstractEqual(a, b)`,
// `a > b := !(a <= b)`, `a >= b := !(a < b)`.
func LessOrEqual(a, b Value) bool {
	return Less(a, b) || AbstractEqual(a, b)
}

func Greater(a, b Value) bool {
	return !LessOrEqual(a, b)
}

func GreaterOrEqual(a, b Value) bool {
	return !Less(a, b)
}
