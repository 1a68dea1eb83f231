package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig caps requests per window. Zero disables a window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	// Allow records one request under key and reports whether it is within
	// every configured window.
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	// Used returns how many requests key made in the trailing window.
	Used(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
