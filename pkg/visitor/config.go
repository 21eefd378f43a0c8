package visitor

import "net/http"

// DefaultCookieName is the name of the identity cookie.
const DefaultCookieName = "__Secure-USID"

// Config holds interceptor configuration.
type Config struct {
	CookieName string `env:"VISITOR_COOKIE_NAME" envDefault:"__Secure-USID"`
}

// MiddlewareFromConfig creates the interceptor from the provided Config.
// Only non-zero values from the config are applied.
func MiddlewareFromConfig(codec Codec, cfg Config, opts ...Option) func(next http.Handler) http.Handler {
	configOpts := make([]Option, 0, 1+len(opts))

	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return Middleware(codec, configOpts...)
}
