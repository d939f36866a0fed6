package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a key after a request was counted.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
