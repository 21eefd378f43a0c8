package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache maps a config type to its *entry.
	cache sync.Map

	dotenvOnce sync.Once
)

// Load populates v from the environment and caches the result per type.
//
// The first call loads ./.env if present (existing variables win), then
// parses the struct tags of T. Later calls for the same T return the cached
// copy, including a cached parse error: a configuration that failed once
// keeps failing until Reset is called.
//
//	type AppConfig struct {
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//		Secret string `env:"SECRET_KEY,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// fatal at startup
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the normal case in production.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		return e.err
	}

	cfg, ok := e.value.(T)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, key)
	}
	*v = cfg
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", reflect.TypeFor[T](), err))
	}
}

// LoadEnv loads the given dotenv files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ./.env. Files are applied in order, so earlier files take precedence.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
