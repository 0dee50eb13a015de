package eval

import (
	"math"
	"strings"

	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// evalCat implements spec 4.8: toString of each argument, concatenated.
func evalCat(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	s := ""
	for _, v := range vals {
		s += value.ToString(v)
	}
	return value.Str(s)
}

// evalSubstr implements spec 4.8's substr(s, start, length?). Indexing
// is by rune (character), not byte, matching the reference's
// char-based semantics.
func evalSubstr(args []expr.Expression, ctx *Context) value.Value {
	var s string
	if len(args) > 0 {
		s = value.ToString(Evaluate(args[0], ctx))
	} else {
		s = "undefined"
	}
	runes := []rune(s)
	n := len(runes)

	start := 0
	if len(args) > 1 {
		start = floorToInt(numOrZero(Evaluate(args[1], ctx)))
	}
	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}

	end := n
	if len(args) > 2 {
		length := floorToInt(numOrZero(Evaluate(args[2], ctx)))
		if length >= 0 {
			end = start + length
		} else {
			end = n + length
		}
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return value.Str(string(runes[start:end]))
}

func floorToInt(f float64) int {
	return int(math.Floor(f))
}

// numOrZero coerces v to a number, defaulting to 0 on coercion
// failure — the behavior substr's start/length arguments and
// missing_some's min argument want, as opposed to the fail-to-null
// propagation the arithmetic operators use.
func numOrZero(v value.Value) float64 {
	n, ok := numOf(v)
	if !ok {
		return 0
	}
	return n.Float()
}

// evalIn implements spec 4.8's dual-purpose `in`: substring test when
// the second argument is a string, membership test when it's an
// array, false otherwise (including the object case, spec 9's
// documented open question).
func evalIn(args []expr.Expression, ctx *Context) value.Value {
	a := arg(args, 0, ctx)
	b := arg(args, 1, ctx)
	switch bv := b.(type) {
	case value.StrValue:
		return value.Bool(strings.Contains(string(bv), value.ToString(a)))
	case value.ArrValue:
		for _, elem := range bv {
			if value.StrictEqual(elem, a) {
				return value.True()
			}
		}
		return value.False()
	default:
		return value.False()
	}
}

