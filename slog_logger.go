package jsonlogic

import "golang.org/x/exp/slog"

// SlogLogger adapts LogMessage values onto a *slog.Logger, for
// production deployments that already centralize logging through
// slog rather than printing to stdout (the DevLogger's job).
type SlogLogger struct {
	Logger *slog.Logger
}

func (s SlogLogger) Handle(msg *LogMessage) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	attrs := make([]any, 0, 2*len(msg.Data)+2)
	attrs = append(attrs, "msg", msg.Message.Label())
	for k, v := range msg.Data {
		attrs = append(attrs, k, v)
	}
	switch msg.Level {
	case Debug:
		l.Debug(msg.String(), attrs...)
	case Info:
		l.Info(msg.String(), attrs...)
	case Warn:
		l.Warn(msg.String(), attrs...)
	case Error:
		l.Error(msg.String(), attrs...)
	}
}
