package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seqlog/seqlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so seqlog can serve as a backend for the standard library:
//
//	slog.SetDefault(slog.New(logger.NewSlogHandler(log)))
//
// Attributes are rendered into the message as key=value pairs, since
// the underlying sink contract carries a single line of text.
type SlogHandler struct {
	logger *Logger
	// attrs are stored with their keys already group-qualified; only
	// attrs added after a WithGroup carry that group's prefix
	attrs []slog.Attr
	group string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Logger
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.level.Admits(slogLevelToCore(level))
}

// Handle renders a slog.Record into a single line and emits it,
// preserving the record's own timestamp.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !level.Message() || !h.logger.level.Admits(level) {
		return nil
	}

	msg := record.Message

	for _, a := range h.attrs {
		msg += " " + renderAttr(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		msg += " " + renderAttr(h.qualify(a))
		return true
	})

	t := record.Time
	if t.IsZero() {
		t = h.logger.clock()
	}
	h.logger.logAt(level, t, msg, nil)
	return nil
}

// qualify prefixes an attribute key with the currently open group
func (h *SlogHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func renderAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve().Any())
}

// WithAttrs returns a new SlogHandler with additional attributes. The
// keys are qualified with the group open at this point, so attrs added
// before a later WithGroup stay unprefixed.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, h.qualify(a))
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  group,
	}
}
