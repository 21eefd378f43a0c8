package logger

import "log/slog"

// Config holds logger configuration loaded from the environment.
type Config struct {
	Service string `env:"APP_NAME" envDefault:"valmiki"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Level   string `env:"LOG_LEVEL" envDefault:""`
}

// NewFromConfig creates a logger from the environment preset in cfg.
// A non-empty Level overrides the preset level.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := make([]Option, 0, 2+len(opts))
	configOpts = append(configOpts, WithEnvironment(cfg.Env, cfg.Service))
	if cfg.Level != "" {
		configOpts = append(configOpts, WithLevelName(cfg.Level))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
