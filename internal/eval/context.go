package eval

import "github.com/growthbook/jsonlogic-go/internal/value"

// Context is the data context (spec glossary): an immutable wrapper
// around the JSON value `var` reads from. Higher-order array
// operators (map, filter, reduce, all, some, none) push a child
// Context whose data replaces the outer data for the body expression;
// pushing is just constructing a new Context borrowing the element's
// Value, and is automatically unwound when the recursive Evaluate
// call returns (spec 9, "Scope management in higher-order operators").
type Context struct {
	data value.Value
}

// NewContext builds the top-level data context for one evaluation.
func NewContext(data value.Value) *Context {
	return &Context{data: data}
}

// Data returns the Value the current scope resolves `var` lookups
// against.
func (c *Context) Data() value.Value {
	return c.data
}

// WithData pushes a new scope, leaving the receiver untouched.
func (c *Context) WithData(data value.Value) *Context {
	return &Context{data: data}
}
