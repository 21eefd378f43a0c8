package visitor

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"

	"github.com/dmitrymomot/valmiki/pkg/cookie"
	"github.com/dmitrymomot/valmiki/pkg/logger"
)

// Codec encrypts identifiers into cookie values and builds the outgoing
// cookie. *cookie.Manager implements it.
type Codec interface {
	Encode(name, value string) (string, error)
	Decode(name, encoded string) (string, error)
	Build(name, value string, opts ...cookie.Option) (*http.Cookie, error)
}

// cookieAttrs is the fixed attribute set of the identity cookie. It is a
// host-only cookie whatever domain the manager defaults to.
var cookieAttrs = []cookie.Option{
	cookie.WithPath("/"),
	cookie.WithDomain(""),
	cookie.WithSecure(true),
	cookie.WithHTTPOnly(true),
	cookie.WithSameSite(http.SameSiteStrictMode),
	cookie.WithPermanent(),
}

// Middleware assigns every request a visitor identifier.
//
// An identifier recovered from a valid cookie is reused and no cookie is
// written. Otherwise a fresh identifier is generated and a new cookie is
// attached to the response right before its headers are sent. Cookies that
// are missing, tampered with or decrypt to a malformed identifier are
// treated as absent. Only a failure to build the outgoing cookie reaches the
// client, through the error handler.
func Middleware(codec Codec, opts ...Option) func(next http.Handler) http.Handler {
	if codec == nil {
		panic("visitor.Middleware: nil codec")
	}

	o := &options{
		cookieName:   DefaultCookieName,
		idLength:     IDLength,
		errorHandler: defaultErrorHandler,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := lookup(r, codec, o)
			if ok {
				next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
				return
			}

			id = Generate(o.idLength)
			r = r.WithContext(WithContext(r.Context(), id))
			outer := w.Header().Clone()

			rw := &responseWriter{
				ResponseWriter: w,
				finalize: func() error {
					return issue(w, r, codec, o, id)
				},
				onError: func(err error) {
					o.logger.ErrorContext(r.Context(), "failed to issue visitor cookie",
						logger.Component("visitor"), logger.Error(err))
					// Headers staged downstream belong to the dropped response.
					h := w.Header()
					clear(h)
					maps.Copy(h, outer)
					o.errorHandler(w, r, err)
				},
			}

			next.ServeHTTP(rw, r)
			rw.commit()
		})
	}
}

// lookup recovers the identifier carried by the request cookie, if any.
func lookup(r *http.Request, codec Codec, o *options) (string, bool) {
	c, err := r.Cookie(o.cookieName)
	if err != nil {
		return "", false
	}

	id, err := codec.Decode(o.cookieName, c.Value)
	if err == nil && !IsValid(id) {
		err = ErrInvalidIdentity
	}
	if err != nil {
		o.logger.DebugContext(r.Context(), "visitor cookie rejected",
			logger.Component("visitor"), logger.Event("visitor.rejected"), slog.String("reason", rejectReason(err)))
		return "", false
	}

	return id, true
}

// issue attaches a freshly encoded identity cookie to w.
func issue(w http.ResponseWriter, r *http.Request, codec Codec, o *options, id string) error {
	// A response nobody will receive gets no cookie.
	if r.Context().Err() != nil {
		return nil
	}

	value, err := codec.Encode(o.cookieName, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIssueCookie, err)
	}

	c, err := codec.Build(o.cookieName, value, cookieAttrs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIssueCookie, err)
	}

	http.SetCookie(w, c)
	o.logger.DebugContext(r.Context(), "visitor cookie issued",
		logger.Component("visitor"), logger.Event("visitor.issued"))
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, cookie.ErrInvalidFormat):
		return "malformed"
	case errors.Is(err, cookie.ErrDecryptionFailed):
		return "unauthenticated"
	case errors.Is(err, ErrInvalidIdentity):
		return "invalid_identity"
	default:
		return "unknown"
	}
}
