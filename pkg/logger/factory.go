package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/valmiki/pkg/environment"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type preset struct {
	level  slog.Level
	format Format
}

// presets maps each environment to its default level and format.
var presets = map[environment.Environment]preset{
	environment.Development: {slog.LevelDebug, FormatText},
	environment.Staging:     {slog.LevelInfo, FormatJSON},
	environment.Production:  {slog.LevelInfo, FormatJSON},
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	addSource  bool
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithEnvironment applies the preset of the named environment and tags every
// record with service. Unknown names use the development preset.
func WithEnvironment(env string, service string) Option {
	return withPreset(environment.Parse(env), service)
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return withPreset(environment.Development, service)
}

// WithStaging configures JSON output at info level.
func WithStaging(service string) Option {
	return withPreset(environment.Staging, service)
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return withPreset(environment.Production, service)
}

func withPreset(env environment.Environment, service string) Option {
	p, ok := presets[env]
	if !ok {
		p = presets[environment.Development]
	}
	return func(c *config) {
		c.level = p.level
		c.format = p.format
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// New builds a *slog.Logger. Defaults are JSON at info level on stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level, AddSource: cfg.addSource}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
