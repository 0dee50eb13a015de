package jsonlogic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/exp/slog"
)

// testHandler is a slog.Handler that captures emitted records in
// memory, keyed by level, so tests can assert on what SlogLogger wrote
// without depending on stdout.
type testHandler struct {
	warnings   []map[string]any
	errors     []map[string]any
	buf        *bytes.Buffer
	subHandler slog.Handler
}

func newTestHandler() *testHandler {
	buf := bytes.Buffer{}
	h := slog.NewJSONHandler(&buf, nil)
	return &testHandler{buf: &buf, subHandler: h}
}

func (h *testHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *testHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return err
	}
	v := map[string]any{}
	err := json.Unmarshal(h.buf.Bytes(), &v)
	h.buf.Reset()
	if err != nil {
		return err
	}
	level, ok := v["level"]
	if !ok {
		return errors.New("no level in log record")
	}
	switch level {
	case "WARN":
		h.warnings = append(h.warnings, v)
	case "ERROR":
		h.errors = append(h.errors, v)
	}
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &testHandler{
		warnings:   h.warnings,
		errors:     h.errors,
		buf:        h.buf,
		subHandler: h.subHandler.WithAttrs(attrs),
	}
}

func (h *testHandler) WithGroup(name string) slog.Handler {
	return &testHandler{
		warnings:   h.warnings,
		errors:     h.errors,
		buf:        h.buf,
		subHandler: h.subHandler.WithGroup(name),
	}
}

func (h *testHandler) allWarnings() string {
	ss := make([]string, 0, len(h.warnings))
	for _, w := range h.warnings {
		b, err := json.Marshal(w)
		if err == nil {
			ss = append(ss, string(b))
		}
	}
	return strings.Join(ss, ", ")
}
