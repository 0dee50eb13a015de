package expr

import (
	"fmt"

	"github.com/growthbook/jsonlogic-go/internal/value"
)

// MaxParseDepth bounds rule nesting depth so a pathological input
// can't exhaust the native call stack during parsing (spec 5). It's a
// generous ceiling: realistic rules rarely nest more than a handful
// of levels deep.
const MaxParseDepth = 512

// Parse turns a JSON value into an Expression tree (spec 4.1). It is
// total except for the unrecognized-operator case and inputs nested
// deeper than MaxParseDepth, and performs no evaluation.
func Parse(json value.Value) (Expression, error) {
	return parseDepth(json, 0)
}

func parseDepth(json value.Value, depth int) (Expression, error) {
	if depth > MaxParseDepth {
		return nil, ErrMaxDepthExceeded
	}

	obj, ok := json.(value.ObjValue)
	if !ok || len(obj) != 1 {
		// Rule 1: non-object values are constants.
		// Rule 2: malformed operator objects (zero or multiple keys)
		// are also constants, matching reference behavior.
		return Constant{Value: json}, nil
	}

	var key string
	var argsValue value.Value
	for k, v := range obj {
		key, argsValue = k, v
	}

	op, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedOperator, key)
	}

	children := normalizeArgs(argsValue)
	args := make([]Expression, len(children))
	for i, child := range children {
		parsed, err := parseDepth(child, depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = parsed
	}
	return Computed{Op: op, Args: args}, nil
}

// normalizeArgs implements spec 4.1's argsValue normalization: an
// array is used as-is, null becomes an empty sequence, and anything
// else is shorthand for a single argument.
func normalizeArgs(argsValue value.Value) []value.Value {
	switch v := argsValue.(type) {
	case value.ArrValue:
		return v
	case value.NullValue:
		return nil
	default:
		return []value.Value{v}
	}
}
