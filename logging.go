package jsonlogic

import "github.com/growthbook/jsonlogic-go/internal/eval"

// LogLevel, LogMsg and friends are re-exported from internal/eval,
// which owns the actual Logger plumbing because it's the package that
// needs to call into it (the `log` operator and the array operators'
// documented empty/non-array fallbacks). This mirrors the teacher's
// flat package, split here across the internal/root boundary.
type (
	LogLevel   = eval.LogLevel
	LogMsg     = eval.LogMsg
	LogData    = eval.LogData
	LogMessage = eval.LogMessage
	Logger     = eval.Logger
	DevLogger  = eval.DevLogger
)

const (
	Debug = eval.Debug
	Info  = eval.Info
	Warn  = eval.Warn
	Error = eval.Error
)

const (
	LogOperatorEmit          = eval.LogOperatorEmit
	ArithmeticCoercionFailed = eval.ArithmeticCoercionFailed
	DivideByZero             = eval.DivideByZero
	ArrayOperatorEmptySource = eval.ArrayOperatorEmptySource
)

// SetLogger installs the logger that the `log` operator and the
// evaluator's non-fatal observations report to. A nil logger (the
// default) silently discards all messages, so Apply and VariableNames
// never need a logger configured to behave correctly (spec 7:
// evaluation is total).
func SetLogger(logger Logger) {
	eval.SetLogger(logger)
}
