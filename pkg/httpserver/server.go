package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dmitrymomot/valmiki/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	h2c             bool
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg     *config
	mu      sync.Mutex
	srv     *http.Server
	stopped bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg}
}

// Run binds the configured address and serves handler until ctx is done or
// the process receives SIGINT/SIGTERM. Bind failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	addr := s.cfg.addr
	if s.cfg.server != nil && s.cfg.server.Addr != "" {
		addr = s.cfg.server.Addr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve is like Run but accepts connections on an existing listener.
// The listener is closed when Serve returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, err := s.prepare(ln.Addr().String(), handler)
	if err != nil {
		_ = ln.Close()
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	log := s.cfg.logger
	log.InfoContext(ctx, "http server listening",
		logger.Component("httpserver"), logger.Addr(ln.Addr().String()), slog.Bool("h2c", s.cfg.h2c))
	for _, h := range s.cfg.startHooks {
		h(log)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var serveErr error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.WithoutCancel(ctx))
		serveErr = <-errCh
	case sig := <-stop:
		log.InfoContext(ctx, "shutdown signal received", logger.Component("httpserver"), slog.String("signal", sig.String()))
		_ = s.Shutdown(context.WithoutCancel(ctx))
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return nil
}

func (s *Server) prepare(addr string, handler http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	srv.Addr = addr
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	if cfg.h2c {
		handler = h2c.NewHandler(handler, &http2.Server{IdleTimeout: srv.IdleTimeout})
	}
	srv.Handler = handler

	s.srv = srv
	return srv, nil
}

// Shutdown stops a running server gracefully and makes Run return. Calls
// before Run and repeated calls are no-ops.
// Any error from http.Server.Shutdown is wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	if srv == nil || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	for _, h := range s.cfg.stopHooks {
		h(s.cfg.logger)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
