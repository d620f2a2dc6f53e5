package sorhttp

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// NewRateLimiter returns a limiter allowing requestsPerSecond requests with a burst
// of at least one. Returns nil when requestsPerSecond is not positive.
func NewRateLimiter(requestsPerSecond float64) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}

	burst := int(math.Ceil(requestsPerSecond))
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// Wait blocks until the limiter allows a request or ctx is done.
// A nil limiter never blocks.
func Wait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}
