package jsonlogic

import (
	"github.com/growthbook/jsonlogic-go/internal/eval"
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
	"github.com/growthbook/jsonlogic-go/jsonsrc"
)

// Apply parses rule and reduces it against data, in the spirit of the
// GrowthBook SDK's own JSON-in/JSON-out functions (see doc.go): rule
// and data are the generic shape encoding/json.Unmarshal produces
// (map[string]interface{}, []interface{}, float64, string, bool, nil),
// and so is the result.
//
// Parsing is the only failure mode (spec 7): an unrecognized operator
// key in rule, or a rule nested deeper than the parser's depth limit
// (ErrMaxDepthExceeded). Evaluation itself is total and never errors.
func Apply(rule any, data any) (any, error) {
	e, err := expr.Parse(value.New(rule))
	if err != nil {
		return nil, err
	}
	ctx := eval.NewContext(value.New(data))
	return value.ToAny(eval.Evaluate(e, ctx)), nil
}

// VariableNames performs spec 6's static analysis: the set of
// constant string argument names reachable under `var` in rule.
func VariableNames(rule any) (map[string]struct{}, error) {
	e, err := expr.Parse(value.New(rule))
	if err != nil {
		return nil, err
	}
	return expr.VariableNames(e)
}

// ApplyJSON is Apply for callers who have raw JSON text rather than an
// already-decoded Go value, parsed via the jsonsrc bridge (spec.md §1:
// "the engine assumes a JSON value type supplied by an external
// library").
func ApplyJSON(ruleJSON, dataJSON []byte) (any, error) {
	ruleVal, err := jsonsrc.ParseBytes(ruleJSON)
	if err != nil {
		return nil, err
	}
	dataVal, err := jsonsrc.ParseBytes(dataJSON)
	if err != nil {
		return nil, err
	}
	e, err := expr.Parse(ruleVal)
	if err != nil {
		return nil, err
	}
	ctx := eval.NewContext(dataVal)
	return value.ToAny(eval.Evaluate(e, ctx)), nil
}
