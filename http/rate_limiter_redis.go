package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

const redisRateKeyPrefix = "sip:ratelimit:"

// RedisRateLimiter shares client buckets between instances through redis.
type RedisRateLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

func NewRedisRateLimiter(rdb *redis.Client, capacity int, window time.Duration) *RedisRateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisRateLimiter{
		limiter: redis_rate.NewLimiter(rdb),
		limit: redis_rate.Limit{
			Rate:   capacity,
			Burst:  capacity,
			Period: window,
		},
	}
}

// Allow fails open when redis cannot be reached.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	res, err := r.limiter.Allow(ctx, redisRateKeyPrefix+key, r.limit)
	if err != nil {
		slog.Warn("rate limit check failed, allowing request", "key", key, "error", err)
		return true, 0
	}
	if res.Allowed > 0 {
		return true, 0
	}
	return false, res.RetryAfter
}
