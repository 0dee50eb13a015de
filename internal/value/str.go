package value

import (
	"strconv"
	"strings"
)

type StrValue string

func Str(s string) StrValue {
	return StrValue(s)
}

func (s StrValue) Type() ValueType {
	return StrType
}

func (s StrValue) Cast(t ValueType) Value {
	switch t {
	case NumType:
		trimmed := strings.TrimSpace(string(s))
		if trimmed == "" {
			return NumFromInt(0)
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Null()
		}
		return NumFromFloat(f)
	case StrType:
		return s
	case BoolType:
		return Bool(s != "")
	default:
		return Null()
	}
}

func IsStr(v Value) bool {
	return v.Type() == StrType
}
