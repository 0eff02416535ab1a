// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/pkg/model"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record]. It has to use the
// same attribute keys as the Gin [middleware.RequestLogger] so logs created by the middleware and
// by the [slog.Logger] context aware methods can be correlated. Not every use of the logger is
// within an HTTP request, think notification consumers, so keys might not be set.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	// anonymous requests do not have a user in the context
	if user, ok := model.GetUserFromContext(ctx); ok {
		r.AddAttrs(slog.Uint64(middleware.RequestLoggerKeyUser, uint64(user.ID)))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(h.Handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return New(h.Handler.WithGroup(name))
}
