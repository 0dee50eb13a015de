package eval

import (
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

func evalEq(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(value.AbstractEqual(arg(args, 0, ctx), arg(args, 1, ctx)))
}

func evalNe(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(!value.AbstractEqual(arg(args, 0, ctx), arg(args, 1, ctx)))
}

func evalStrictEq(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(value.StrictEqual(arg(args, 0, ctx), arg(args, 1, ctx)))
}

func evalStrictNe(args []expr.Expression, ctx *Context) value.Value {
	return value.Bool(!value.StrictEqual(arg(args, 0, ctx), arg(args, 1, ctx)))
}
