package cookie

import (
	"net/http"
	"time"
)

// permanentLifetime is how long a "permanent" cookie lives.
const permanentLifetime = 20 * 365 * 24 * time.Hour

type Options struct {
	Path      string
	Domain    string
	MaxAge    int
	Permanent bool
	Secure    bool
	HttpOnly  bool
	SameSite  http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithPermanent makes the cookie effectively non-expiring. It overrides MaxAge.
func WithPermanent() Option {
	return func(o *Options) {
		o.Permanent = true
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions creates a new Options struct by copying the base options
// and applying the provided option functions. The base options are not modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
