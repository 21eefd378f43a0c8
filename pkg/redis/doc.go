// Package redis holds the optional Redis integration: connection with retry,
// a readiness health-check and a per-visitor hit counter.
//
// Redis is off unless REDIS_URL is set (see Config.Enabled). The server
// starts without it and readiness then only reports the process itself.
//
// # Usage
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			// fatal at startup
//		}
//		defer client.Close()
//
//		counter := redis.NewVisitCounter(client, cfg.VisitTTL)
//		n, err := counter.Hit(ctx, visitorID)
//		_ = n
//
//		ready := redis.Healthcheck(client)
//		_ = ready
//	}
//
// Counters live under "visitor:<id>:hits". Hit increments and refreshes the
// TTL in one MULTI/EXEC transaction.
//
// # Errors
//
// Sentinel errors are joined with the underlying go-redis error using
// errors.Join, so errors.Is works for both.
package redis
