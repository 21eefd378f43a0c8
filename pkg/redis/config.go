package redis

import "time"

// Config describes the optional Redis connection. An empty ConnectionURL
// disables Redis; the format is "redis://:password@localhost:6379/0".
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	VisitTTL       time.Duration `env:"REDIS_VISIT_TTL" envDefault:"720h"` // expiry of per-visitor counters, refreshed on every hit
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
