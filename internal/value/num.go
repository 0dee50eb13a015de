package value

import (
	"math"
	"strconv"
)

// NumValue is a JSON number. Like mcvoid/json's Integer/Number split,
// it records whether the value has an exact int64 representation
// (an integer input, or a float with no fractional part) so that
// equality and ordering can use an integer fast path for values that
// don't round-trip through float64 (spec's "large integers that do
// not round-trip through double").
type NumValue struct {
	f     float64
	i     int64
	isInt bool
}

type number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Num builds a NumValue from any Go numeric type, preserving integer
// precision for integer inputs.
func Num[T number](n T) Value {
	switch v := any(n).(type) {
	case int:
		return NumFromInt(int64(v))
	case int8:
		return NumFromInt(int64(v))
	case int16:
		return NumFromInt(int64(v))
	case int32:
		return NumFromInt(int64(v))
	case int64:
		return NumFromInt(v)
	case uint:
		return NumFromInt(int64(v))
	case uint8:
		return NumFromInt(int64(v))
	case uint16:
		return NumFromInt(int64(v))
	case uint32:
		return NumFromInt(int64(v))
	case uint64:
		return NumFromInt(int64(v))
	case float32:
		return NumFromFloat(float64(v))
	case float64:
		return NumFromFloat(v)
	}
	return NumFromFloat(0)
}

// NumFromInt builds an exact-integer NumValue.
func NumFromInt(i int64) NumValue {
	return NumValue{f: float64(i), i: i, isInt: true}
}

// NumFromFloat builds a NumValue from a float64. Non-finite results
// (NaN, +/-Inf) collapse to a non-integer zero rather than being
// carried through the engine: divide-by-zero and similar operators
// map these back to Null before they ever reach here, but this keeps
// the constructor itself total.
func NumFromFloat(f float64) NumValue {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NumValue{f: 0, isInt: false}
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
		return NumValue{f: f, i: int64(f), isInt: true}
	}
	return NumValue{f: f, isInt: false}
}

// DeepCopy implements go-deepcopy's documented override hook.
// barkimedes/go-deepcopy reflects over struct fields and skips any
// with PkgPath != "" (unexported), which would otherwise leave f/i/
// isInt zeroed on every copy; NumValue is immutable, so the correct
// "deep" copy is just itself.
func (n NumValue) DeepCopy() interface{} {
	return n
}

func (n NumValue) Type() ValueType {
	return NumType
}

func (n NumValue) Cast(t ValueType) Value {
	switch t {
	case NumType:
		return n
	case BoolType:
		return Bool(n.Float() != 0)
	case StrType:
		return Str(n.String())
	default:
		return Null()
	}
}

func IsNum(v Value) bool {
	return v.Type() == NumType
}

// Float returns the value as a float64.
func (n NumValue) Float() float64 {
	return n.f
}

// Int returns the exact int64 representation and whether the value
// has one (i.e. was constructed from, or is exactly equal to, an
// integer).
func (n NumValue) Int() (int64, bool) {
	return n.i, n.isInt
}

func (n NumValue) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// numEqual and numLess implement the integer-fast-path comparison
// described in the spec's design notes: compare as int64 when both
// operands have an exact integer representation, otherwise fall back
// to float64.
func numEqual(a, b NumValue) bool {
	if a.isInt && b.isInt {
		return a.i == b.i
	}
	return a.f == b.f
}

func numLess(a, b NumValue) bool {
	if a.isInt && b.isInt {
		return a.i < b.i
	}
	return a.f < b.f
}
