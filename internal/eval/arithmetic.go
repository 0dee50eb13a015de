package eval

import (
	"math"

	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// numOf coerces v to a number via spec 4.3.2's toNumber, reporting
// failure instead of silently defaulting — arithmetic operators (spec
// 4.7) all fall back to null on the first failed coercion among their
// arguments.
func numOf(v value.Value) (value.NumValue, bool) {
	return value.ToNumber(v)
}

// parseFloatOf coerces v via spec 4.3.2's parseFloat (null fails,
// unlike toNumber): used by `+` and `*`.
func parseFloatOf(v value.Value) (value.NumValue, bool) {
	return value.ParseFloatStrict(v)
}

// evalAdd implements spec 4.7: empty -> 0; any parseFloat failure ->
// null; otherwise the left-to-right sum.
func evalAdd(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	if len(vals) == 0 {
		return value.NumFromInt(0)
	}
	sum, ok := parseFloatOf(vals[0])
	if !ok {
		logAt(Warn, ArithmeticCoercionFailed, LogData{"op": "+", "value": value.ToString(vals[0])})
		return value.Null()
	}
	for _, v := range vals[1:] {
		n, ok := parseFloatOf(v)
		if !ok {
			logAt(Warn, ArithmeticCoercionFailed, LogData{"op": "+", "value": value.ToString(v)})
			return value.Null()
		}
		sum = addNum(sum, n)
	}
	return sum
}

func addNum(a, b value.NumValue) value.NumValue {
	ai, aok := a.Int()
	bi, bok := b.Int()
	if aok && bok {
		sum := ai + bi
		// overflow check: fall back to float if the int64 sum wrapped.
		if (sum > ai) == (bi > 0) {
			return value.NumFromInt(sum)
		}
	}
	return value.NumFromFloat(a.Float() + b.Float())
}

// evalSub implements spec 4.7: no args -> null; one arg negates;
// two or more subtract left to right; any toNumber failure -> null.
func evalSub(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	if len(vals) == 0 {
		return value.Null()
	}
	first, ok := numOf(vals[0])
	if !ok {
		logAt(Warn, ArithmeticCoercionFailed, LogData{"op": "-", "value": value.ToString(vals[0])})
		return value.Null()
	}
	if len(vals) == 1 {
		return value.NumFromFloat(-first.Float())
	}
	result := first.Float()
	for _, v := range vals[1:] {
		n, ok := numOf(v)
		if !ok {
			logAt(Warn, ArithmeticCoercionFailed, LogData{"op": "-", "value": value.ToString(v)})
			return value.Null()
		}
		result -= n.Float()
	}
	return value.NumFromFloat(result)
}

// evalMul implements spec 4.7: no args -> null; one arg is returned
// unchanged (reference parity, not coerced); two or more multiply via
// parseFloat, any failure -> null.
func evalMul(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	if len(vals) == 0 {
		return value.Null()
	}
	if len(vals) == 1 {
		return vals[0]
	}
	result := 1.0
	for _, v := range vals {
		n, ok := parseFloatOf(v)
		if !ok {
			logAt(Warn, ArithmeticCoercionFailed, LogData{"op": "*", "value": value.ToString(v)})
			return value.Null()
		}
		result *= n.Float()
	}
	return value.NumFromFloat(result)
}

// evalDiv implements spec 4.7's two-argument division; dividing by
// zero, or a failed coercion on either side, yields null rather than
// Inf/NaN, keeping evaluation total.
func evalDiv(args []expr.Expression, ctx *Context) value.Value {
	a, aok := numOf(arg(args, 0, ctx))
	b, bok := numOf(arg(args, 1, ctx))
	if !aok || !bok {
		return value.Null()
	}
	if b.Float() == 0 {
		logAt(Warn, DivideByZero, LogData{"op": "/"})
		return value.Null()
	}
	return value.NumFromFloat(a.Float() / b.Float())
}

// evalMod mirrors evalDiv, using math.Mod for the remainder.
func evalMod(args []expr.Expression, ctx *Context) value.Value {
	a, aok := numOf(arg(args, 0, ctx))
	b, bok := numOf(arg(args, 1, ctx))
	if !aok || !bok {
		return value.Null()
	}
	if b.Float() == 0 {
		logAt(Warn, DivideByZero, LogData{"op": "%"})
		return value.Null()
	}
	return value.NumFromFloat(math.Mod(a.Float(), b.Float()))
}

// evalMin and evalMax implement spec 4.7: null for zero arguments or
// any failed coercion, otherwise the numeric extreme.
func evalMin(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	if len(vals) == 0 {
		return value.Null()
	}
	min, ok := numOf(vals[0])
	if !ok {
		return value.Null()
	}
	for _, v := range vals[1:] {
		n, ok := numOf(v)
		if !ok {
			return value.Null()
		}
		if value.Less(n, min) {
			min = n
		}
	}
	return min
}

func evalMax(args []expr.Expression, ctx *Context) value.Value {
	vals := evaluateArgs(args, ctx)
	if len(vals) == 0 {
		return value.Null()
	}
	max, ok := numOf(vals[0])
	if !ok {
		return value.Null()
	}
	for _, v := range vals[1:] {
		n, ok := numOf(v)
		if !ok {
			return value.Null()
		}
		if value.Greater(n, max) {
			max = n
		}
	}
	return max
}
