package eval

import (
	"strconv"
	"strings"

	"github.com/growthbook/jsonlogic-go/internal/value"
)

// Lookup implements the `var` data accessor (spec 4.4). It returns
// the found value and true, or (Null, false) on a miss; callers
// decide the miss policy (a supplied default, or null).
func Lookup(data value.Value, path value.Value) (value.Value, bool) {
	switch p := path.(type) {
	case value.NullValue:
		return data, true
	case value.StrValue:
		if p == "" {
			return data, true
		}
		return lookupPath(data, string(p))
	case value.NumValue:
		return lookupIndex(data, p)
	default:
		// bool, array, object paths are all misses.
		return value.Null(), false
	}
}

func lookupIndex(data value.Value, n value.NumValue) (value.Value, bool) {
	idx, ok := asNonNegIndex(n)
	switch d := data.(type) {
	case value.ArrValue:
		if !ok || idx >= len(d) {
			return value.Null(), false
		}
		return d[idx], true
	case value.StrValue:
		runes := []rune(string(d))
		if !ok || idx >= len(runes) {
			return value.Null(), false
		}
		return value.Str(string(runes[idx])), true
	case value.ObjValue:
		v, found := d[value.ToString(n)]
		if !found {
			return value.Null(), false
		}
		return v, true
	default:
		return value.Null(), false
	}
}

// lookupPath walks a dot-separated path step by step (spec 4.4). A
// path containing an empty segment (".." or a leading/trailing dot)
// is always a miss at that step, for both arrays and objects — an
// inherited quirk of the stepwise algorithm, documented in spec 9 as
// an intentionally preserved behavior rather than a bug.
func lookupPath(data value.Value, path string) (value.Value, bool) {
	steps := strings.Split(path, ".")
	cur := data
	for i, step := range steps {
		if step == "" {
			return value.Null(), false
		}
		switch c := cur.(type) {
		case value.ArrValue:
			idx, ok := parseNonNegInt(step)
			if !ok || idx >= len(c) {
				return value.Null(), false
			}
			cur = c[idx]
		case value.ObjValue:
			v, found := c[step]
			if !found {
				return value.Null(), false
			}
			cur = v
		case value.StrValue:
			if i != len(steps)-1 {
				// A character index must be the last step.
				return value.Null(), false
			}
			idx, ok := parseNonNegInt(step)
			runes := []rune(string(c))
			if !ok || idx >= len(runes) {
				return value.Null(), false
			}
			cur = value.Str(string(runes[idx]))
		default:
			// Any other primitive (null, number, bool) can't be
			// descended into further.
			return value.Null(), false
		}
	}
	return cur, true
}

func parseNonNegInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func asNonNegIndex(n value.NumValue) (int, bool) {
	f := n.Float()
	if f < 0 {
		return 0, false
	}
	return int(f), true
}
