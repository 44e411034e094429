// Package fetch holds the retryable fetch primitive shared by card fetchers and
// the forecast aggregator, the failure classification of remote API errors, and
// the per-entity Fetcher state machine.
package fetch

import (
	"context"
	"time"

	"weatherdash.app/pkg/errors"
)

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// RetryPolicy controls how many extra attempts a fetch gets and how long it
// waits before each of them. The delay before retry n (0-based) is
// InitialBackoff * 2^n.
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	// RetryIf decides whether a failure is retryable; nil retries every failure
	RetryIf func(err error) bool
	// Sleep defaults to a timer-based wait
	Sleep Sleeper
	// OnRetry is called before waiting for retry number `retry` (1-based)
	OnRetry func(retry int, delay time.Duration, err error)
}

// NoRetry is a single-attempt policy
func NoRetry() RetryPolicy {
	return RetryPolicy{}
}

// TimeoutRetry retries only transport timeouts
func TimeoutRetry(maxRetries int, initialBackoff time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxRetries:     maxRetries,
		InitialBackoff: initialBackoff,
		RetryIf:        errors.IsTimeoutError,
	}
}

// Backoff returns the delay before retry n (0-based)
func (p RetryPolicy) Backoff(retry int) time.Duration {
	return p.InitialBackoff * time.Duration(1<<retry)
}

func (p RetryPolicy) shouldRetry(err error) bool {
	if p.RetryIf == nil {
		return true
	}
	return p.RetryIf(err)
}

// Do runs op and retries it according to policy. The returned error is the
// last failure of op, or the context error if ctx ends while waiting.
func Do[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	sleep := policy.Sleep
	if sleep == nil {
		sleep = TimerSleep
	}

	for retry := 0; ; retry++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if retry >= policy.MaxRetries || !policy.shouldRetry(err) {
			return zero, err
		}

		delay := policy.Backoff(retry)
		if policy.OnRetry != nil {
			policy.OnRetry(retry+1, delay, err)
		}

		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

// TimerSleep waits for d using a timer, returning early with ctx.Err()
func TimerSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
