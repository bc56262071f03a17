package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles calls to the extraction backend. Rate and cost limits on
// that backend are the binding constraint of the whole pipeline, so every
// extraction request waits for clearance first.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a request is allowed or the context expires
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow checks if a request is allowed without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
