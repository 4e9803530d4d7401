// Package badpass keeps failed-login penalty counters in Redis so repeated
// bad passwords against an account are visible across service restarts.
package badpass

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veldt-labs/chatserv/internal/account"
)

const (
	keyPrefix  = "chatserv:badpass:"
	defaultTTL = time.Hour
)

// Tracker records failed password attempts per account. A nil tracker is a
// no-op, so deployments without Redis lose only the bookkeeping.
type Tracker struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a tracker on the given Redis client.
func New(rdb *redis.Client) *Tracker {
	return &Tracker{rdb: rdb, ttl: defaultTTL}
}

// Record bumps the failure counter for the account and returns the new
// count. The counter expires after the penalty window.
func (t *Tracker) Record(ctx context.Context, name string) (int64, error) {
	if t == nil || t.rdb == nil {
		return 0, nil
	}
	key := keyPrefix + account.NormalizeName(name)
	n, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := t.rdb.Expire(ctx, key, t.ttl).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Count reads the current failure counter for the account.
func (t *Tracker) Count(ctx context.Context, name string) (int64, error) {
	if t == nil || t.rdb == nil {
		return 0, nil
	}
	n, err := t.rdb.Get(ctx, keyPrefix+account.NormalizeName(name)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
