package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Option configures the HTTP server. Options with invalid arguments panic
// when constructed, so misconfiguration surfaces at startup.
type Option func(*config)

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver.%s: duration must be > 0, got %s", name, d))
	}
}

// WithAddr sets the listen address used by Run.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver.WithAddr: empty address")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout bounds keep-alive idle time for HTTP/1.1 and h2c connections.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithH2C toggles cleartext HTTP/2 (prior knowledge and Upgrade: h2c).
func WithH2C(enabled bool) Option {
	return func(c *config) { c.h2c = enabled }
}

// WithServer uses the provided http.Server. Its Handler is replaced; timeouts
// it already sets win over the options.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver.WithServer: nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger supplies the server logger. Nil discards server logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback run once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver.WithStartHook: nil hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback run after graceful shutdown.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver.WithStopHook: nil hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
