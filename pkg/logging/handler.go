package logging

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapSlogHandler adapts zap.Logger to the slog.Handler interface.
type zapSlogHandler struct {
	zap    *zap.Logger
	level  zapcore.Level
	attrs  []zap.Field
	groups []string
}

func (h *zapSlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogToZapLevel(level) >= h.level
}

func (h *zapSlogHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]zap.Field, 0, r.NumAttrs()+len(h.attrs))
	fields = append(fields, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix(), attr)
		return true
	})

	if ce := h.zap.Check(slogToZapLevel(r.Level), r.Message); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

func (h *zapSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]zap.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(fields, h.attrs)
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix(), attr)
	}
	return &zapSlogHandler{zap: h.zap, level: h.level, attrs: fields, groups: h.groups}
}

func (h *zapSlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := make([]string, len(h.groups)+1)
	copy(groups, h.groups)
	groups[len(h.groups)] = name
	return &zapSlogHandler{zap: h.zap, level: h.level, attrs: h.attrs, groups: groups}
}

func (h *zapSlogHandler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// appendAttr flattens attr into zap fields, dotting group names into keys.
func appendAttr(fields []zap.Field, prefix string, attr slog.Attr) []zap.Field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = prefix + attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			fields = appendAttr(fields, inner, a)
		}
		return fields
	}

	key := prefix + attr.Key
	switch attr.Value.Kind() {
	case slog.KindString:
		return append(fields, zap.String(key, attr.Value.String()))
	case slog.KindInt64:
		return append(fields, zap.Int64(key, attr.Value.Int64()))
	case slog.KindBool:
		return append(fields, zap.Bool(key, attr.Value.Bool()))
	case slog.KindDuration:
		return append(fields, zap.Duration(key, attr.Value.Duration()))
	default:
		if err, ok := attr.Value.Any().(error); ok {
			return append(fields, zap.NamedError(key, err))
		}
		return append(fields, zap.Any(key, attr.Value.Any()))
	}
}

func slogToZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
