package readiness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TimeoutError is returned when the dependent services fail to converge within the
// bounded wait. It carries the last observed per-service statuses for diagnosis.
type TimeoutError struct {
	Attempts     int
	LastStatuses []ServiceStatus
}

// Error summarizes the timeout including the last known state of every service
func (err *TimeoutError) Error() string {
	var states []string
	for _, status := range err.LastStatuses {
		state := status.State
		if status.Health != "" {
			state += "/" + status.Health
		}
		states = append(states, fmt.Sprintf("%s=%s", status.Name, state))
	}
	if len(states) == 0 {
		states = append(states, "no services observed")
	}
	return fmt.Sprintf("dependent services did not become ready within %d attempts (%s)", err.Attempts, strings.Join(states, ", "))
}

// Orchestrator blocks until every dependent service reports ready or a deadline elapses.
// It is used to gate integration runs against a multi-service backend topology.
type Orchestrator struct {
	// Source provides the per-attempt status snapshot
	Source StatusSource

	// ExpectedServices guards against a partially started topology reporting a
	// false positive: readiness requires at least this many services to be present.
	ExpectedServices int

	// PreDelay is slept once before polling starts. The workflow engine broker
	// exposes no health signal and needs a fixed head start.
	PreDelay time.Duration

	// Interval is the fixed delay between unsuccessful polls
	Interval time.Duration

	// MaxAttempts bounds the polling; exceeding it is a fatal, reported timeout
	MaxAttempts int

	// HealthCheck is an optional, advisory secondary probe executed once the
	// container-level criterion is met. Its failure is logged, never fatal.
	HealthCheck func(ctx context.Context) error
}

// Await polls the status source until every service is ready and the expected
// service count is met. Readiness is computed from a single snapshot per attempt;
// the checks are not parallelized.
func (orchestrator *Orchestrator) Await(ctx context.Context) error {
	if orchestrator.PreDelay > 0 {
		log.Info().Dur("delay", orchestrator.PreDelay).Msg("waiting for the service topology to initialize...")
		select {
		case <-time.After(orchestrator.PreDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var lastStatuses []ServiceStatus
	attempt := 0
	err := Poll(ctx, func(ctx context.Context) (bool, error) {
		attempt++
		statuses, err := orchestrator.Source.Statuses(ctx)
		if err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("services not ready yet")
			return false, err
		}
		lastStatuses = statuses

		if len(statuses) < orchestrator.ExpectedServices {
			log.Debug().Int("attempt", attempt).Int("services", len(statuses)).Int("expected", orchestrator.ExpectedServices).Msg("waiting for services...")
			return false, nil
		}
		for _, status := range statuses {
			if !status.Ready() {
				log.Debug().Int("attempt", attempt).Str("service", status.Name).Str("state", status.State).Msg("waiting for services...")
				return false, nil
			}
		}
		return true, nil
	}, orchestrator.Interval, orchestrator.MaxAttempts)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &TimeoutError{
			Attempts:     orchestrator.MaxAttempts,
			LastStatuses: lastStatuses,
		}
	}
	log.Info().Msg("all services are running")

	// The primary criterion is container-level state; the liveness endpoint is
	// only probed as a best effort.
	if orchestrator.HealthCheck != nil {
		if err := orchestrator.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("backend not healthy yet, continuing anyway")
		} else {
			log.Info().Msg("backend is healthy")
		}
	}
	return nil
}
