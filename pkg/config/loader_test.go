package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valmiki/pkg/config"
)

type defaultsConfig struct {
	Name    string   `env:"CFG_TEST_DEFAULT_NAME" envDefault:"valmiki"`
	Port    int      `env:"CFG_TEST_DEFAULT_PORT" envDefault:"8080"`
	Enabled bool     `env:"CFG_TEST_DEFAULT_ENABLED" envDefault:"true"`
	Keys    []string `env:"CFG_TEST_DEFAULT_KEYS" envSeparator:","`
}

type envConfig struct {
	Name string   `env:"CFG_TEST_ENV_NAME"`
	Port int      `env:"CFG_TEST_ENV_PORT"`
	Keys []string `env:"CFG_TEST_ENV_KEYS" envSeparator:","`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_REQUIRED_SECRET,required"`
}

type invalidConfig struct {
	Port int `env:"CFG_TEST_INVALID_PORT"`
}

type fileConfig struct {
	First  string `env:"CFG_TEST_FILE_FIRST"`
	Shared string `env:"CFG_TEST_FILE_SHARED"`
	Second string `env:"CFG_TEST_FILE_SECOND"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "valmiki", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Empty(t, cfg.Keys)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_ENV_NAME", "from-env")
	t.Setenv("CFG_TEST_ENV_PORT", "9000")
	t.Setenv("CFG_TEST_ENV_KEYS", "a,b,c")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Keys)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv("CFG_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.Reset()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Contains(t, err.Error(), "CFG_TEST_REQUIRED_SECRET")
	})

	t.Run("error is cached until reset", func(t *testing.T) {
		t.Setenv("CFG_TEST_REQUIRED_SECRET", "now-set")

		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

		config.Reset()
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "now-set", cfg.Secret)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFG_TEST_INVALID_PORT", "not-a-number")

		var cfg invalidConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Cleanup(func() {
		for _, k := range []string{"CFG_TEST_FILE_FIRST", "CFG_TEST_FILE_SHARED", "CFG_TEST_FILE_SECOND"} {
			_ = os.Unsetenv(k)
		}
	})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("CFG_TEST_FILE_FIRST=one\nCFG_TEST_FILE_SHARED=from-first\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("CFG_TEST_FILE_SECOND=two\nCFG_TEST_FILE_SHARED=from-second\n"), 0o600))

	require.NoError(t, config.LoadEnv(first, second))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "one", cfg.First)
	assert.Equal(t, "two", cfg.Second)
	assert.Equal(t, "from-first", cfg.Shared)

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
