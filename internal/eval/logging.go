package eval

import (
	"bytes"
	"fmt"
	"text/template"
)

// LogLevel is an enumeration for log message levels.
type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
)

func (lev LogLevel) String() string {
	switch lev {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return "<unknown>"
}

// LogMsg is a closed enumeration of the non-fatal observations the
// evaluator can emit (spec 4.8's "log" operator, arithmetic coercion
// failures, division by zero, and the array operators' documented
// empty/non-array fallbacks). Evaluation itself
// never errors (spec 7); this is the diagnostic channel instead.
type LogMsg int

const (
	LogOperatorEmit LogMsg = iota
	ArithmeticCoercionFailed
	DivideByZero
	ArrayOperatorEmptySource
)

func (msg LogMsg) Label() string {
	switch msg {
	case LogOperatorEmit:
		return "LogOperatorEmit"
	case ArithmeticCoercionFailed:
		return "ArithmeticCoercionFailed"
	case DivideByZero:
		return "DivideByZero"
	case ArrayOperatorEmptySource:
		return "ArrayOperatorEmptySource"
	default:
		return "<unknown>"
	}
}

func (msg LogMsg) template() *template.Template {
	t := ""
	switch msg {
	case LogOperatorEmit:
		t = "log: {{.value}}"
	case ArithmeticCoercionFailed:
		t = "{{.op}}: argument {{.value}} does not coerce to a number, result is null"
	case DivideByZero:
		t = "{{.op}}: division by zero, result is null"
	case ArrayOperatorEmptySource:
		t = "{{.op}}: first argument is not an array, falling back to {{.fallback}}"
	default:
		return nil
	}
	tmpl, err := template.New("log").Parse(t)
	if err != nil {
		return nil
	}
	return tmpl
}

// LogData provides detail data for log messages.
type LogData map[string]interface{}

// LogMessage is a single emitted diagnostic: a level, a message kind,
// and detail data to render into that kind's template.
type LogMessage struct {
	Level   LogLevel
	Message LogMsg
	Data    LogData
}

func (msg *LogMessage) String() string {
	levelPrefix := "[" + msg.Level.String() + "] "

	tmpl := msg.Message.template()
	if tmpl == nil {
		return levelPrefix + "<uninterpretable log message>"
	}

	args := msg.Data
	if args == nil {
		args = LogData{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, args); err != nil {
		return levelPrefix + "<log message with invalid formatting>"
	}
	return levelPrefix + buf.String()
}

// Logger is the diagnostic sink the `log` operator (and the
// evaluator's non-fatal observations) write to.
type Logger interface {
	Handle(msg *LogMessage)
}

// SetLogger installs the package-level logger. A nil logger (the
// default) silently discards all messages.
func SetLogger(userLogger Logger) {
	logger = userLogger
}

var logger Logger

// DevLogger prints every logged message to standard output; suitable
// for development use.
type DevLogger struct{}

func (DevLogger) Handle(msg *LogMessage) {
	fmt.Println(msg.String())
}

func logAt(level LogLevel, msg LogMsg, data LogData) {
	if logger != nil {
		logger.Handle(&LogMessage{level, msg, data})
	}
}
