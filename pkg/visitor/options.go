package visitor

import (
	"log/slog"
	"net/http"
)

// ErrorHandler writes the response used when the identity cookie cannot be
// issued.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type options struct {
	cookieName   string
	idLength     int
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures Middleware.
type Option func(*options)

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cookieName = name
		}
	}
}

// WithIDLength sets the length of generated identifiers. It panics outside
// 1..MaxIDLength, since such identifiers would be rejected on the next request.
func WithIDLength(n int) Option {
	if n < 1 || n > MaxIDLength {
		panic("visitor.WithIDLength: length out of range")
	}
	return func(o *options) { o.idLength = n }
}

// WithErrorHandler replaces the default 500 response written when the cookie
// cannot be issued. Nil handlers are ignored.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithLogger supplies the logger used for debug and error records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
