package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/valmiki/pkg/logger"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
