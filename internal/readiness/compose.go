package readiness

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ServiceStatus represents the container-level state of one dependent service
type ServiceStatus struct {
	Name   string `json:"Name"`
	State  string `json:"State"`
	Health string `json:"Health"`
}

// Ready reports whether the service satisfies its readiness predicate.
// A health signal is optional; a service without one is considered ready once it
// is running.
func (status ServiceStatus) Ready() bool {
	return status.State == "running" || status.Health == "healthy"
}

// StatusSource provides a point-in-time snapshot of the dependent services' statuses
type StatusSource interface {
	// Statuses retrieves the current status of every known dependent service
	Statuses(ctx context.Context) ([]ServiceStatus, error)
}

// ComposeSource queries the container-level service states of a docker compose project
type ComposeSource struct {
	// File is the compose file describing the dependent service topology
	File string
}

var _ StatusSource = (*ComposeSource)(nil)

// Statuses runs 'docker compose ps --format json' and parses the reported services
func (source *ComposeSource) Statuses(ctx context.Context) ([]ServiceStatus, error) {
	cmd := exec.CommandContext(ctx, "docker", "compose", "-f", source.File, "ps", "--format", "json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("could not query compose service states: %w", err)
	}
	return parseComposeStatuses(out)
}

// Teardown stops and removes the compose topology including its volumes.
// Failures are logged only; teardown must never mask an earlier failure of the
// caller.
func (source *ComposeSource) Teardown(ctx context.Context) {
	cmd := exec.CommandContext(ctx, "docker", "compose", "-f", source.File, "down", "-v")
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Error().Err(err).Str("output", string(out)).Msg("could not tear down the compose topology")
	}
}

// parseComposeStatuses handles both output flavours of 'compose ps --format json':
// one JSON object per line (newer CLIs) and a single JSON array (older ones).
func parseComposeStatuses(out []byte) ([]ServiceStatus, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return []ServiceStatus{}, nil
	}

	if trimmed[0] == '[' {
		var statuses []ServiceStatus
		if err := json.Unmarshal(trimmed, &statuses); err != nil {
			return nil, fmt.Errorf("could not parse compose service states: %w", err)
		}
		return statuses, nil
	}

	statuses := []ServiceStatus{}
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var status ServiceStatus
		if err := json.Unmarshal(line, &status); err != nil {
			return nil, fmt.Errorf("could not parse compose service state line: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, scanner.Err()
}
