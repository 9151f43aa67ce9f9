package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps how many extraction jobs start per second across the whole
// process. Useful when a large batch shares a host with latency-sensitive
// work. A nil Limiter imposes no limit.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing jobsPerSecond starts with the given
// burst. Returns nil when jobsPerSecond is zero or negative, meaning
// unlimited.
func NewLimiter(jobsPerSecond float64, burst int) *Limiter {
	if jobsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(jobsPerSecond), burst)}
}

// Wait blocks until the next job may start or the context is canceled
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
