package logging

import (
	"context"
	"github.com/myrjola/findmoney/internal/errors"
	"log/slog"
)

type contextKey string

const slogAttrs contextKey = "slogAttrs"

// ContextHandler adds the [slog.Attr] stored in [context.Context] to every record it handles.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps h in a ContextHandler.
func NewContextHandler(h slog.Handler) ContextHandler {
	return ContextHandler{Handler: h}
}

// Handle enriches the log record with [slog.Attr] stored in context with [WithAttrs].
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(Attrs(ctx)...)
	if err := h.Handler.Handle(ctx, r); err != nil {
		return errors.Wrap(err, "handle log record")
	}
	return nil
}

// WithAttrs returns a handler that keeps the context enrichment after [slog.Logger.With].
func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup returns a handler that keeps the context enrichment after [slog.Logger.WithGroup].
func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// WithAttrs adds [...slog.Attr] to the [context.Context] that enriches the log messages handled by [ContextHandler].
func WithAttrs(ctx context.Context, attr ...slog.Attr) context.Context {
	existing := Attrs(ctx)
	merged := make([]slog.Attr, 0, len(existing)+len(attr))
	merged = append(merged, existing...)
	merged = append(merged, attr...)
	return context.WithValue(ctx, slogAttrs, merged)
}

// Attrs returns the attributes stored in ctx with [WithAttrs].
func Attrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(slogAttrs).([]slog.Attr)
	return attrs
}
