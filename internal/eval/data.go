package eval

import (
	"math"

	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// evalVar implements the `var` operator (spec 4.4): resolves its
// first argument as a path against the context's data, falling back
// to a supplied default (or null) on a miss.
func evalVar(args []expr.Expression, ctx *Context) value.Value {
	path := arg(args, 0, ctx)
	v, ok := Lookup(ctx.Data(), path)
	if ok {
		return v
	}
	if len(args) > 1 {
		return Evaluate(args[1], ctx)
	}
	return value.Null()
}

// missingKeys implements the key-list resolution of `missing`: if the
// first argument evaluates to an array, its elements are the key list and
// any further arguments are ignored outright, regardless of how many
// there are (spec 4.5, "supports piping outputs of merge/if");
// otherwise every argument is itself a key.
func missingKeys(args []expr.Expression, ctx *Context) []value.Value {
	if len(args) == 0 {
		return nil
	}
	first := Evaluate(args[0], ctx)
	if arr, ok := first.(value.ArrValue); ok {
		return arr
	}
	vals := make([]value.Value, len(args))
	vals[0] = first
	for i := 1; i < len(args); i++ {
		vals[i] = Evaluate(args[i], ctx)
	}
	return vals
}

// evalMissing implements spec 4.5: the keys whose `var` lookup against
// the context data would miss, in probe order.
func evalMissing(args []expr.Expression, ctx *Context) value.Value {
	result := value.ArrValue{}
	for _, key := range missingKeys(args, ctx) {
		if _, ok := Lookup(ctx.Data(), key); !ok {
			result = append(result, key)
		}
	}
	return result
}

// evalMissingSome implements spec 4.5: like `missing`, but satisfied
// once at least `min` of the probed keys are present.
func evalMissingSome(args []expr.Expression, ctx *Context) value.Value {
	min := 0
	if len(args) > 0 {
		min = int(math.Ceil(numOrZero(Evaluate(args[0], ctx))))
	}
	if min < 0 {
		min = 0
	}

	var keys value.ArrValue
	if len(args) > 1 {
		arr, ok := Evaluate(args[1], ctx).(value.ArrValue)
		if !ok {
			return value.ArrValue{}
		}
		keys = arr
	} else {
		return value.ArrValue{}
	}

	remaining := min
	result := value.ArrValue{}
	for _, key := range keys {
		if remaining < 1 {
			return value.ArrValue{}
		}
		if _, ok := Lookup(ctx.Data(), key); ok {
			remaining--
			if remaining < 1 {
				return value.ArrValue{}
			}
		} else {
			result = append(result, key)
		}
	}
	return result
}
