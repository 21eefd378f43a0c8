// Package logger builds *slog.Logger instances for the service and provides
// the attribute helpers and HTTP access-log middleware used across packages.
//
// New takes functional options: output format (JSON or text), level, static
// attributes and ContextExtractor callbacks. The resulting handler runs every
// extractor against the record's context, so values stored by middleware
// (request ID, visitor ID, environment) appear on any record logged with
// InfoContext and friends.
//
// # Presets
//
// WithEnvironment picks a preset from the environment name:
// development logs text at debug level, staging and production log JSON at
// info level. NewFromConfig reads APP_NAME, APP_ENV and LOG_LEVEL; a
// non-empty LOG_LEVEL overrides the preset.
//
//	log := logger.NewFromConfig(cfg, logger.WithContextExtractors(
//		requestid.LoggerExtractor(),
//		visitor.LoggerExtractor(),
//	))
//	logger.SetAsDefault(log)
//
// # Attributes
//
// Helpers such as Error, RequestID, VisitorID, Component and Status keep key
// names consistent. Error, Errors, RequestID and VisitorID return an empty
// Attr for nil or empty input, which slog drops, so callers need no guard:
//
//	log.InfoContext(ctx, "done", logger.Error(err))
//
// # HTTP access log
//
// Middleware writes one record per request with method, path, status, bytes,
// duration and remote address. 5xx responses log at error level and 4xx at
// warn. Mount it after the middleware whose context values should appear in
// the record.
package logger
