package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor adds "env" to log records whose context carries an
// environment. The signature matches logger.ContextExtractor.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", string(env)), true
	}
}
