package expr

import "errors"

// ErrUnrecognizedOperator is the parse-time error for an object key
// that doesn't map into the closed operator set (spec 4.1, spec 7).
// The only other parse-time error is ErrMaxDepthExceeded.
var ErrUnrecognizedOperator = errors.New("jsonlogic: unrecognized operation")

// ErrMaxDepthExceeded guards against pathologically deep rule trees
// (spec 5: "implementations should either bound input depth at parse
// time or use an explicit evaluation stack"). This engine takes the
// first option: the parser, not the evaluator, rejects inputs nested
// deeper than MaxParseDepth.
var ErrMaxDepthExceeded = errors.New("jsonlogic: rule nested too deeply")

// The three VariableNames static-analysis error subkinds (spec 6/7).
var (
	ErrMissingVariableName     = errors.New("jsonlogic: var has no name argument")
	ErrVariableNameNotConstant = errors.New("jsonlogic: var name is not statically resolvable")
	ErrVariableNameNotString   = errors.New("jsonlogic: var name is not a string constant")
)
