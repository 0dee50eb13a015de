// Package eval implements the recursive reduction of a parsed
// Expression tree against a Context (spec 4.2), including the full
// operator dispatch table (spec 4.6–4.9).
package eval

import (
	deepcopy "github.com/barkimedes/go-deepcopy"
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// opFunc is the shape of a single operator's reducer: it receives its
// own un-reduced argument expressions and the current data context,
// and decides itself whether/when/in what order to evaluate them.
type opFunc func(args []expr.Expression, ctx *Context) value.Value

// dispatch is the operator table spec 9 calls for: "a dispatch table
// keyed by a small enumerated Operator tag is preferred over open
// polymorphism — the operator set is closed."
var dispatch = map[expr.Operator]opFunc{
	expr.Eq:       evalEq,
	expr.Ne:       evalNe,
	expr.StrictEq: evalStrictEq,
	expr.StrictNe: evalStrictNe,

	expr.Not:   evalNot,
	expr.Bang2: evalBang2,
	expr.And:   evalAnd,
	expr.Or:    evalOr,
	expr.If:    evalIf,

	expr.Lt:  evalLt,
	expr.Lte: evalLte,
	expr.Gt:  evalGt,
	expr.Gte: evalGte,

	expr.Add: evalAdd,
	expr.Sub: evalSub,
	expr.Mul: evalMul,
	expr.Div: evalDiv,
	expr.Mod: evalMod,
	expr.Min: evalMin,
	expr.Max: evalMax,

	expr.Cat:    evalCat,
	expr.Substr: evalSubstr,
	expr.In:     evalIn,

	expr.Merge:  evalMerge,
	expr.Map:    evalMap,
	expr.Filter: evalFilter,
	expr.Reduce: evalReduce,
	expr.All:    evalAll,
	expr.Some:   evalSome,
	expr.None:   evalNone,

	expr.Var:         evalVar,
	expr.Missing:     evalMissing,
	expr.MissingSome: evalMissingSome,

	expr.Log: evalLog,
}

// Evaluate reduces an Expression against a Context (spec 4.2).
// Evaluation is total: every operator defines a result for every
// input shape, so Evaluate never fails and never panics for
// recoverable conditions.
func Evaluate(e expr.Expression, ctx *Context) value.Value {
	switch node := e.(type) {
	case expr.Constant:
		// spec 4.2: "Constant(v) -> v (cloned as output)" — deep-copy
		// so a caller mutating the returned value can't reach back
		// into the (shared, immutable) Expression tree.
		return deepcopy.MustAnything(node.Value).(value.Value)
	case expr.Computed:
		fn, ok := dispatch[node.Op]
		if !ok {
			// Unreachable: Parse only ever builds Computed nodes for
			// operators present in this same table.
			return value.Null()
		}
		return fn(node.Args, ctx)
	default:
		return value.Null()
	}
}

// evaluateArgs evaluates every argument, left to right, with no
// short-circuiting. Operators that must short-circuit (and, or, if,
// the array operators) evaluate their arguments themselves instead.
func evaluateArgs(args []expr.Expression, ctx *Context) []value.Value {
	vals := make([]value.Value, len(args))
	for i, a := range args {
		vals[i] = Evaluate(a, ctx)
	}
	return vals
}

// arg evaluates the i'th argument, or returns Null if it's absent —
// the total default spec 4.6 and others rely on for missing operands.
func arg(args []expr.Expression, i int, ctx *Context) value.Value {
	if i < 0 || i >= len(args) {
		return value.Null()
	}
	return Evaluate(args[i], ctx)
}
