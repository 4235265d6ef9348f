package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// MultiHandler sends every record to each handler enabled for its level.
// The service uses it to pair the terminal handler with the rotated file.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler fans out to handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.handlers, func(next slog.Handler) bool {
		return next.Enabled(ctx, level)
	})
}

// Handle writes r to every enabled handler. A failing sink does not stop
// the others; all failures are joined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler signature
	var errs []error

	for _, next := range h.handlers {
		if !next.Enabled(ctx, r.Level) {
			continue
		}

		if err := next.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	derived := make([]slog.Handler, len(h.handlers))
	for i, next := range h.handlers {
		derived[i] = fn(next)
	}

	return &MultiHandler{handlers: derived}
}
