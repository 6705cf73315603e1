package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements a sliding window over a sorted set per key.
type RedisRateLimiter struct {
	client *redis.Client
	config Config
	now    func() time.Time
	seq    atomic.Uint64
}

func NewRedisRateLimiter(client *redis.Client, config Config) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// WithClock overrides the time source, used by tests.
func (l *RedisRateLimiter) WithClock(now func() time.Time) *RedisRateLimiter {
	l.now = now
	return l
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if l.config.Requests <= 0 || l.config.Window <= 0 {
		return Result{Allowed: true, Limit: l.config.Requests}, nil
	}

	now := l.now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.config.Window).UnixNano()
	nowNano := now.UnixNano()
	member := fmt.Sprintf("%d-%d", nowNano, l.seq.Add(1))

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: member})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := zcard.Val()
	limit := int64(l.config.Requests)
	if count >= limit {
		return Result{Allowed: false, Limit: l.config.Requests, Remaining: 0}, nil
	}

	return Result{Allowed: true, Limit: l.config.Requests, Remaining: limit - count - 1}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.getKey(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, l.config.Window.String())
}
