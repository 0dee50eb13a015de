package eval

import (
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// evalMerge implements spec 4.8: concatenate arguments, flattening one
// level; a non-array argument is appended as a single element.
func evalMerge(args []expr.Expression, ctx *Context) value.Value {
	result := value.ArrValue{}
	for _, v := range evaluateArgs(args, ctx) {
		if arr, ok := v.(value.ArrValue); ok {
			result = append(result, arr...)
		} else {
			result = append(result, v)
		}
	}
	return result
}

// sourceArray evaluates the first argument of a higher-order array
// operator in the outer scope, returning its elements and whether it
// was in fact an array.
func sourceArray(op string, args []expr.Expression, ctx *Context) (value.ArrValue, bool) {
	if len(args) == 0 {
		return nil, false
	}
	arr, ok := Evaluate(args[0], ctx).(value.ArrValue)
	if !ok {
		logAt(Warn, ArrayOperatorEmptySource, LogData{"op": op, "fallback": "[]"})
	}
	return arr, ok
}

// evalMap implements spec 4.9: evaluate the body against each element
// in its own scope; non-array source yields []. A missing body
// defaults to a null constant, so a non-empty source still produces
// an array of nulls the same length, not [].
func evalMap(args []expr.Expression, ctx *Context) value.Value {
	arr, ok := sourceArray("map", args, ctx)
	if !ok {
		return value.ArrValue{}
	}
	var body expr.Expression = expr.Constant{Value: value.Null()}
	if len(args) > 1 {
		body = args[1]
	}
	result := make(value.ArrValue, len(arr))
	for i, elem := range arr {
		result[i] = Evaluate(body, ctx.WithData(elem))
	}
	return result
}

// evalFilter implements spec 4.9: as map, but keeps only elements
// whose body result is truthy; a missing body excludes everything.
func evalFilter(args []expr.Expression, ctx *Context) value.Value {
	arr, ok := sourceArray("filter", args, ctx)
	if !ok || len(args) < 2 {
		return value.ArrValue{}
	}
	body := args[1]
	result := value.ArrValue{}
	for _, elem := range arr {
		if value.Truthy(Evaluate(body, ctx.WithData(elem))) {
			result = append(result, elem)
		}
	}
	return result
}

// evalReduce implements spec 4.9: fold left over the source array with
// an inner scope of {current, accumulator}; a non-array source
// returns the (outer-scope-evaluated) initial value unchanged.
func evalReduce(args []expr.Expression, ctx *Context) value.Value {
	initial := value.Value(value.Null())
	if len(args) > 2 {
		initial = Evaluate(args[2], ctx)
	}

	if len(args) == 0 {
		return initial
	}
	arr, ok := Evaluate(args[0], ctx).(value.ArrValue)
	if !ok {
		return initial
	}
	if len(args) < 2 {
		return initial
	}
	body := args[1]

	acc := initial
	for _, elem := range arr {
		scope := value.ObjValue{"current": elem, "accumulator": acc}
		acc = Evaluate(body, ctx.WithData(scope))
	}
	return acc
}

// arrayOrStringElements implements the reference quirk behind `all`:
// strings are iterated character by character, in addition to plain
// arrays (spec 4.9 and 9's documented asymmetry versus some/none).
func arrayOrStringElements(v value.Value) (value.ArrValue, bool) {
	switch t := v.(type) {
	case value.ArrValue:
		return t, true
	case value.StrValue:
		runes := []rune(string(t))
		elems := make(value.ArrValue, len(runes))
		for i, r := range runes {
			elems[i] = value.Str(string(r))
		}
		return elems, true
	default:
		return nil, false
	}
}

// evalAll implements spec 4.9: false for a non-array/non-string
// source or an empty one; otherwise true only if every element's body
// result is truthy, short-circuiting on the first falsy one.
func evalAll(args []expr.Expression, ctx *Context) value.Value {
	if len(args) == 0 {
		return value.False()
	}
	elems, ok := arrayOrStringElements(Evaluate(args[0], ctx))
	if !ok || len(elems) == 0 {
		return value.False()
	}
	if len(args) < 2 {
		return value.False()
	}
	body := args[1]
	for _, elem := range elems {
		if !value.Truthy(Evaluate(body, ctx.WithData(elem))) {
			return value.False()
		}
	}
	return value.True()
}

// evalSome implements spec 4.9: true on the first truthy element,
// short-circuiting; false for an empty or non-array source. Unlike
// `all`, a string source is treated as non-array here — a deliberate
// asymmetry inherited from the reference implementation.
func evalSome(args []expr.Expression, ctx *Context) value.Value {
	if len(args) == 0 {
		return value.False()
	}
	arr, ok := Evaluate(args[0], ctx).(value.ArrValue)
	if !ok || len(arr) == 0 {
		return value.False()
	}
	if len(args) < 2 {
		return value.False()
	}
	body := args[1]
	for _, elem := range arr {
		if value.Truthy(Evaluate(body, ctx.WithData(elem))) {
			return value.True()
		}
	}
	return value.False()
}

// evalNone implements spec 4.9: true for an empty or non-array
// source, otherwise the negation of `some`.
func evalNone(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(!value.Truthy(evalSome(args, ctx)))
}
