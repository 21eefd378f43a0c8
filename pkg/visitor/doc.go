// Package visitor assigns every HTTP client a stable, anonymous visitor
// identifier without a server-side session store.
//
// The identifier is a 64-character random string over [A-Za-z0-9]. It
// travels in an encrypted, authenticated cookie named "__Secure-USID"
// (HttpOnly, Secure, Path=/, SameSite=Strict, host-only, effectively
// non-expiring) and
// is exposed to downstream handlers through the request context.
//
// # Overview
//
//   - Generate produces fresh identifiers from crypto/rand.
//   - Middleware is the request interceptor: it decodes the incoming cookie,
//     falls back to a new identifier when the cookie is missing, tampered
//     with or malformed, stores the identifier in the context and, only for
//     new identifiers, attaches a fresh cookie to the response.
//   - FromContext reads the identifier in downstream handlers.
//
// # Lifecycle
//
// For every request the middleware runs Lookup → Decide → Forward →
// Finalize. Decode failures never produce an error: the visitor simply gets
// a new identity. The cookie is written lazily, right before the downstream
// handler sends its headers, so a handler that panics before responding
// leaves no cookie behind. A cookie is issued once per visitor and never
// rotated; cookies encrypted with a previous key that is still configured
// keep their identity.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/valmiki/pkg/cookie"
//		"github.com/dmitrymomot/valmiki/pkg/visitor"
//	)
//
//	man, err := cookie.NewFromConfig(cookieCfg)
//	if err != nil {
//		// refuse to start
//	}
//
//	r := chi.NewRouter()
//	r.Use(visitor.Middleware(man))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		id, _ := visitor.FromContext(r.Context())
//		fmt.Fprintln(w, id)
//	})
//
// # Logger integration
//
//	log := logger.New(logger.WithContextExtractors(visitor.LoggerExtractor()))
//
// # Error Handling
//
// If the outgoing cookie cannot be built, the error (wrapping ErrIssueCookie)
// is logged and passed to the ErrorHandler, which by default responds with
// 500 Internal Server Error. Response headers are reset to what they were
// when the middleware was entered, so headers and cookies staged by the
// downstream handler are not sent. Writes from the downstream handler after
// that point return ErrResponseAborted.
//
// # Concurrency
//
// The middleware keeps no state between requests. The codec and its keys
// are shared read-only by all requests.
package visitor
