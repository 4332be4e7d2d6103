package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis counter,
// for deployments running more than one process instance.
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter creates a Redis-backed fixed-window limiter
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Check implements the fixed window with INCR: the first request in a window
// creates the counter and sets its expiry; a full window denies without
// incrementing further state.
func (l *RedisLimiter) Check(ctx context.Context, key string, maxRequests int, window time.Duration) (Result, error) {
	redisKey := fmt.Sprintf("rl:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit window expiry: %w", err)
		}
	}

	ttl, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	resetAt := time.Now().Add(ttl)

	if int(count) > maxRequests {
		return Result{Allowed: false, Limit: maxRequests, Remaining: 0, ResetAt: resetAt}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     maxRequests,
		Remaining: maxRequests - int(count),
		ResetAt:   resetAt,
	}, nil
}
