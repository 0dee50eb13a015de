package expr

import "github.com/growthbook/jsonlogic-go/internal/value"

// Expression is a node in the parsed rule tree (spec 3). It has
// exactly two variants: Constant and Computed. Once built by Parse it
// is immutable and safe to evaluate repeatedly, including
// concurrently, since evaluation never mutates it.
type Expression interface {
	isExpression()
}

// Constant is a literal JSON value to emit as-is.
type Constant struct {
	Value value.Value
}

func (Constant) isExpression() {}

// Computed is an operator call: an operator tag and its ordered child
// expressions. Arity is not checked here; each operator validates its
// own argument count at evaluation time.
type Computed struct {
	Op   Operator
	Args []Expression
}

func (Computed) isExpression() {}
