package readiness

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted is returned by Poll when the predicate did not succeed
// within the bounded attempt count
var ErrAttemptsExhausted = errors.New("maximum attempt count exhausted")

// Predicate reports whether the polled condition holds.
// A returned error counts as "condition does not hold yet" and is retried; it is
// never fatal on its own.
type Predicate func(ctx context.Context) (bool, error)

// Poll evaluates the predicate up to maxAttempts times, sleeping the given interval
// between attempts. It never retries indefinitely: once the attempt bound is
// exceeded, ErrAttemptsExhausted is returned, wrapping the last predicate error if
// there was one. Context cancellation aborts the wait immediately.
func Poll(ctx context.Context, predicate Predicate, interval time.Duration, maxAttempts int) error {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		done, err := predicate(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if done {
			return nil
		}
	}

	if lastErr != nil {
		return errors.Join(ErrAttemptsExhausted, lastErr)
	}
	return ErrAttemptsExhausted
}
