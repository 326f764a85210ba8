// Package redis holds the Redis-backed rate limiter shared by server
// replicas.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "netscheme:ratelimit:"
	window    = time.Minute
)

// RateLimiter is a fixed one-minute window counter per client key.
type RateLimiter struct {
	client  *goredis.Client
	limit   int
	timeout time.Duration
}

// NewRateLimiter connects to Redis and verifies the connection.
func NewRateLimiter(ctx context.Context, addr, password string, db, perMinute int) (*RateLimiter, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RateLimiter{client: client, limit: perMinute, timeout: 250 * time.Millisecond}, nil
}

// Allow counts one request against key's current window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	redisKey := keyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, fmt.Errorf("expire: %w", err)
		}
	}
	if count <= int64(l.limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}
	return false, ttl, nil
}

// Close releases the Redis connection pool.
func (l *RateLimiter) Close() error {
	return l.client.Close()
}

// Ping checks that Redis is reachable.
func (l *RateLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
