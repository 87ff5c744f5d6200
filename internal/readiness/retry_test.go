package readiness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Poll(context.Background(), func(ctx context.Context) (bool, error) {
		attempts++
		return attempts >= 3, nil
	}, time.Millisecond, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPollExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := Poll(context.Background(), func(ctx context.Context) (bool, error) {
		attempts++
		return false, nil
	}, time.Millisecond, 4)

	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, 4, attempts)
}

func TestPollRetriesPredicateErrors(t *testing.T) {
	probeErr := errors.New("probe failed")
	attempts := 0
	err := Poll(context.Background(), func(ctx context.Context) (bool, error) {
		attempts++
		if attempts < 3 {
			return false, probeErr
		}
		return true, nil
	}, time.Millisecond, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPollWrapsLastPredicateError(t *testing.T) {
	probeErr := errors.New("probe failed")
	err := Poll(context.Background(), func(ctx context.Context) (bool, error) {
		return false, probeErr
	}, time.Millisecond, 3)

	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.ErrorIs(t, err, probeErr)
}

func TestPollAbortsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := Poll(ctx, func(ctx context.Context) (bool, error) {
		attempts++
		cancel()
		return false, nil
	}, time.Hour, 10)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
