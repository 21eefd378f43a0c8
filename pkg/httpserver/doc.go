// Package httpserver runs an http.Handler with graceful shutdown, env-driven
// timeouts, optional cleartext HTTP/2 and health-check probes.
//
// Run binds the listen address itself, so configuration and key loading that
// must fail before a socket is opened belong before the call to Run. Serve
// accepts an existing net.Listener, which is what the tests use.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled or the process receives SIGINT or SIGTERM.
// Shutdown waits up to the shutdown timeout for in-flight requests.
//
// # h2c
//
// With WithH2C(true) (HTTP_H2C, on by default) the handler is wrapped with
// golang.org/x/net/http2/h2c, so clients with prior knowledge and clients
// sending "Upgrade: h2c" get HTTP/2 over plain TCP. TLS is expected to be
// terminated in front of the process.
//
// # Health checks
//
// HealthCheckHandler with no checks is a liveness probe ("ALIVE"). With
// checks it is a readiness probe answering "READY" or 503 "NOT_READY".
//
// # Errors
//
// Bind and serve failures are joined with ErrStart, a second Run with
// ErrAlreadyRunning, and shutdown failures with ErrShutdown.
package httpserver
