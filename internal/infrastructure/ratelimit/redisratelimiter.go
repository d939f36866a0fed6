package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a sliding-window limiter: each request is a member of a
// sorted set scored by its timestamp, and members older than the window are
// trimmed before counting.
type RedisRateLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := time.Now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.window).UnixNano()
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcard.Val())
	allowed := count < l.limit
	if !allowed {
		// a rejected request does not consume quota
		if err := l.client.ZRem(ctx, redisKey, member).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to release rejected request: %w", err)
		}
	}

	remaining := l.limit - count - 1
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: remaining,
		ResetIn:   l.window,
	}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.getKey(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("jirant:ratelimit:%s:%s:%s", l.prefix, identifier, l.window.String())
}
