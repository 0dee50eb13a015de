package eval

import (
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

// evalLog implements spec 4.8: return the argument unchanged, emitting
// it to the diagnostic sink as a side effect. A missing argument is
// null, both as the result and as what gets logged.
func evalLog(args []expr.Expression, ctx *Context) value.Value {
	v := arg(args, 0, ctx)
	logAt(Info, LogOperatorEmit, LogData{"value": value.ToString(v)})
	return v
}
