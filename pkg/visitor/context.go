package visitor

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/valmiki/pkg/logger"
)

type contextKey struct{}

// WithContext stores the visitor identifier in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the visitor identifier set by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// LoggerExtractor adds visitor_id to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := FromContext(ctx); ok {
			return logger.VisitorID(id), true
		}
		return slog.Attr{}, false
	}
}
