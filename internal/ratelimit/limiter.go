// Package ratelimit paces runner invocations.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter blocks the caller until the next invocation slot is free.
// It never starts goroutines; pacing happens in the calling goroutine.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows perSecond invocations per second. Zero disables pacing.
func NewRateLimiter(perSecond int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil || r.limiter.Limit() == 0 {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}

// PerSecond returns the configured rate.
func (r *RateLimiter) PerSecond() int {
	if r == nil {
		return 0
	}
	return int(r.limiter.Limit())
}
