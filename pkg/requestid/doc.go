// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses the client's X-Request-ID when it is 1 to 128 characters
// of [A-Za-z0-9_-] and otherwise generates a UUIDv4. The ID is stored in the
// request context and echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Handlers read it back with FromContext, which returns "" outside a request.
package requestid
