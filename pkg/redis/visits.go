package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const visitKeyPrefix = "visitor:"

// VisitCounter counts requests per visitor identifier.
type VisitCounter struct {
	db  redis.UniversalClient
	ttl time.Duration
}

// NewVisitCounter returns a counter storing one key per visitor. A positive
// ttl expires idle counters; zero keeps them forever.
func NewVisitCounter(client redis.UniversalClient, ttl time.Duration) *VisitCounter {
	return &VisitCounter{db: client, ttl: ttl}
}

// Hit increments the counter of visitorID and returns the new value.
func (c *VisitCounter) Hit(ctx context.Context, visitorID string) (int64, error) {
	if visitorID == "" {
		return 0, ErrEmptyVisitorID
	}

	key := visitKey(visitorID)
	var incr *redis.IntCmd
	_, err := c.db.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		if c.ttl > 0 {
			p.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return 0, errors.Join(ErrCounterFailed, err)
	}
	return incr.Val(), nil
}

// Count returns the current counter of visitorID, zero if it has none.
func (c *VisitCounter) Count(ctx context.Context, visitorID string) (int64, error) {
	if visitorID == "" {
		return 0, ErrEmptyVisitorID
	}

	n, err := c.db.Get(ctx, visitKey(visitorID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Join(ErrCounterFailed, err)
	}
	return n, nil
}

func visitKey(visitorID string) string {
	return visitKeyPrefix + visitorID + ":hits"
}
