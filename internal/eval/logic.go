package eval

import (
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// evalAnd implements spec 4.6: returns the first falsy argument; if
// all are truthy, the last; empty -> null. Short-circuits on the
// first falsy argument — later arguments are never evaluated.
func evalAnd(args []expr.Expression, ctx *Context) value.Value {
	if len(args) == 0 {
		return value.Null()
	}
	var last value.Value
	for _, a := range args {
		last = Evaluate(a, ctx)
		if !value.Truthy(last) {
			return last
		}
	}
	return last
}

// evalOr implements spec 4.6: the mirror image of evalAnd.
func evalOr(args []expr.Expression, ctx *Context) value.Value {
	if len(args) == 0 {
		return value.Null()
	}
	var last value.Value
	for _, a := range args {
		last = Evaluate(a, ctx)
		if value.Truthy(last) {
			return last
		}
	}
	return last
}

// evalIf implements spec 4.6's classical-if-with-chained-elseif form:
// 0/1 args return the argument (or null); 2/3 args are the familiar
// if/then/else; 4+ args alternate condition/then pairs with a single
// trailing else. Arguments past the chosen branch are never
// evaluated.
func evalIf(args []expr.Expression, ctx *Context) value.Value {
	switch len(args) {
	case 0:
		return value.Null()
	case 1:
		return Evaluate(args[0], ctx)
	}

	i := 0
	for i+1 < len(args) {
		if value.Truthy(Evaluate(args[i], ctx)) {
			return Evaluate(args[i+1], ctx)
		}
		i += 2
	}
	if i < len(args) {
		return Evaluate(args[i], ctx)
	}
	return value.Null()
}

// evalNot and evalBang2 implement spec 4.6's `!` and `!!`: a missing
// argument is treated as null.
func evalNot(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(!value.Truthy(arg(args, 0, ctx)))
}

func evalBang2(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(value.Truthy(arg(args, 0, ctx)))
}
