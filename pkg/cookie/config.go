package cookie

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/valmiki/pkg/secrets"
)

// Config holds cookie manager configuration.
// SecretKey is the base64 seed used for writing; PreviousSecretKeys are
// accepted for reading only.
type Config struct {
	SecretKey          string        `env:"SECRET_KEY,required"`
	PreviousSecretKeys []string      `env:"SECRET_KEY_PREVIOUS" envSeparator:","`
	Path               string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain             string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure             bool          `env:"COOKIE_SECURE" envDefault:"true"`
	HttpOnly           bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite           http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"3"` // 3 = SameSiteStrictMode
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// keys parses the current and previous seeds, current first.
func (c Config) keys() ([]secrets.Key, error) {
	current, err := secrets.ParseKey(c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("SECRET_KEY: %w", err)
	}

	prev := make([]string, 0, len(c.PreviousSecretKeys))
	for _, s := range c.PreviousSecretKeys {
		if strings.TrimSpace(s) != "" {
			prev = append(prev, s)
		}
	}
	previous, err := secrets.ParseKeys(prev...)
	if err != nil {
		return nil, fmt.Errorf("SECRET_KEY_PREVIOUS: %w", err)
	}

	keys := append([]secrets.Key{current}, previous...)
	return keys, nil
}

// NewFromConfig creates a new Manager from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	keys, err := cfg.keys()
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 5)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	if cfg.HttpOnly {
		configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(keys, configOpts...)
}
