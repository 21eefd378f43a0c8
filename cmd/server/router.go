package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CAFxX/httpcompression"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/valmiki/pkg/environment"
	"github.com/dmitrymomot/valmiki/pkg/httpserver"
	"github.com/dmitrymomot/valmiki/pkg/logger"
	"github.com/dmitrymomot/valmiki/pkg/requestid"
	"github.com/dmitrymomot/valmiki/pkg/visitor"
)

// visitCounter is satisfied by *redis.VisitCounter.
type visitCounter interface {
	Hit(ctx context.Context, visitorID string) (int64, error)
}

type routerDeps struct {
	log        *slog.Logger
	env        environment.Environment
	codec      visitor.Codec
	visitorCfg visitor.Config
	counter    visitCounter // nil without Redis
	readiness  []func(context.Context) error
}

// newRouter builds the handler chain. Probes sit outside the visitor group
// so they never mint identities.
func newRouter(d routerDeps) (http.Handler, error) {
	compress, err := httpcompression.DefaultAdapter()
	if err != nil {
		return nil, fmt.Errorf("compression: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(d.env),
		compress,
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, append([]func(context.Context) error{alwaysReady}, d.readiness...)...))

	r.Group(func(r chi.Router) {
		r.Use(
			visitor.MiddlewareFromConfig(d.codec, d.visitorCfg, visitor.WithLogger(d.log)),
			logger.Middleware(d.log),
		)
		r.Get("/", indexHandler(d.log, d.counter))
		r.NotFound(notFoundHandler)
		r.MethodNotAllowed(notFoundHandler)
	})

	return r, nil
}

func alwaysReady(context.Context) error { return nil }

// indexHandler greets the visitor and, with Redis, reports their visit count
// in X-Visit-Count. Counter failures only cost the header.
func indexHandler(log *slog.Logger, counter visitCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, ok := visitor.FromContext(r.Context()); ok && counter != nil {
			n, err := counter.Hit(r.Context(), id)
			if err != nil {
				log.WarnContext(r.Context(), "visit counter unavailable",
					logger.Component("redis"), logger.Error(err))
			} else {
				w.Header().Set("X-Visit-Count", strconv.FormatInt(n, 10))
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "Hello, world!")
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, "Hello, World!")
}
