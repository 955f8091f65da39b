package logs

import (
	"context"
	"crypto/rand"
	"log/slog"
)

type sessionKey struct{}

// WithSession tags every record logged with ctx by the calculator session id.
func WithSession(ctx context.Context) (context.Context, string) {
	id := rand.Text()[:8]
	return context.WithValue(ctx, sessionKey{}, id), id
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id := SessionID(ctx); id != "" {
		record.Add("calc.session", id)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
