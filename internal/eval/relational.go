package eval

import (
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// chainCompare implements the 2-or-3-argument "between" form spec 4.1
// describes for <, <=, >, >=: every consecutive pair must satisfy
// cmp. Fewer than two values can't be compared and are false.
func chainCompare(vals []value.Value, cmp func(a, b value.Value) bool) bool {
	if len(vals) < 2 {
		return false
	}
	for i := 0; i+1 < len(vals); i++ {
		if !cmp(vals[i], vals[i+1]) {
			return false
		}
	}
	return true
}

func evalLt(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(chainCompare(evaluateArgs(args, ctx), value.Less))
}

func evalLte(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(chainCompare(evaluateArgs(args, ctx), value.LessOrEqual))
}

func evalGt(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(chainCompare(evaluateArgs(args, ctx), value.Greater))
}

func evalGte(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(chainCompare(evaluateArgs(args, ctx), value.GreaterOrEqual))
}
