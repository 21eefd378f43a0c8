// Package config loads application configuration from environment variables
// into tagged Go structs, once per struct type.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for struct parsing. Each package in this module
// declares its own Config with env tags; cmd/server loads them all here before
// anything else starts.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The first Load loads ./.env when it exists. Use LoadEnv to read other
// files explicitly. Variables already present in the process environment are
// never overridden.
//
// # Caching
//
// Results are cached per type, errors included. Reset clears the cache and is
// meant for tests that change the environment between loads.
//
// # Errors
//
//   - ErrParsingConfig: a value failed to parse or a required variable is missing.
//   - ErrLoadingEnvFile: a dotenv file passed to LoadEnv could not be read.
//   - ErrInvalidConfigType: the cache held a value of an unexpected type.
//   - ErrNilPointer: Load was called with a nil pointer.
package config
