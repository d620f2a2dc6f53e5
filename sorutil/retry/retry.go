package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/riverdex/sor/domain"
)

// Do runs fn until it succeeds or the attempts in cfg are exhausted.
// Waits between attempts double from the minimum backoff up to the maximum.
// Each attempt gets its own timeout when cfg sets one.
// Errors wrapped with Permanent stop retrying immediately.
func Do[T any](ctx context.Context, cfg domain.RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = cfg.MinBackoff()
	exponential.MaxInterval = cfg.MaxBackoff()
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0
	exponential.MaxElapsedTime = 0
	exponential.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(maxAttempts-1)), ctx)

	return backoff.RetryWithData(func() (T, error) {
		attemptCtx, cancel := withAttemptTimeout(ctx, cfg.Timeout())
		defer cancel()

		return fn(attemptCtx)
	}, policy)
}

// Permanent marks err as not retryable.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func withAttemptTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
