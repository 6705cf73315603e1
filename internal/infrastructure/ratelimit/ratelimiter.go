package ratelimit

import (
	"context"
	"time"
)

// Config bounds how many requests a key may make inside one sliding window.
type Config struct {
	Requests int
	Window   time.Duration
}

// Result describes the outcome of a single Allow call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int64
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
