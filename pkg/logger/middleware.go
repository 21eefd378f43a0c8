package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware writes one access-log record per request. Server errors are
// logged at error level, client errors at warn, everything else at info.
// Request-scoped attributes come from the logger's context extractors, so
// mount it after the middleware that populates the context.
func Middleware(log *slog.Logger) func(next http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(r.Context(), level, "http request",
				Component("http"),
				Method(r.Method),
				Path(r.URL.Path),
				Status(status),
				Bytes(ww.BytesWritten()),
				Duration(time.Since(start)),
				RemoteAddr(r.RemoteAddr),
			)
		})
	}
}
