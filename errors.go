package jsonlogic

import "github.com/growthbook/jsonlogic-go/internal/expr"

// The two parse-time error surfaces spec 7 allows (plus the
// VariableNames static-analysis subkinds from spec 6), re-exported
// from internal/expr so callers never need to import an internal
// package to use errors.Is/errors.As against them.
var (
	ErrUnrecognizedOperator    = expr.ErrUnrecognizedOperator
	ErrMaxDepthExceeded        = expr.ErrMaxDepthExceeded
	ErrMissingVariableName     = expr.ErrMissingVariableName
	ErrVariableNameNotConstant = expr.ErrVariableNameNotConstant
	ErrVariableNameNotString   = expr.ErrVariableNameNotString
)
