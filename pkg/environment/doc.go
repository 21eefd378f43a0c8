// Package environment propagates the current application environment
// (development, staging, production) through context.Context, HTTP requests
// and structured logs.
//
// Configured names are normalised with Parse, which also accepts the short
// forms "dev", "stage" and "prod". Middleware attaches the environment to
// every request context; FromContext and the IsProduction/IsDevelopment
// predicates read it back.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(env))
//
// Add the environment to log records written with a request context:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// # Error Handling
//
// The helpers never return errors. Missing values result in the zero value ("").
package environment
