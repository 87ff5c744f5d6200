package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tribeworks/loanflow/internal/readiness"
)

func waitReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wait-ready",
		Short: "Wait until the dependent service topology is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator := &readiness.Orchestrator{
				Source:           &readiness.ComposeSource{File: cfg.ComposeFile},
				ExpectedServices: cfg.ReadinessExpectedServices,
				PreDelay:         cfg.ReadinessPreDelay,
				Interval:         cfg.ReadinessInterval,
				MaxAttempts:      cfg.ReadinessMaxAttempts,
				HealthCheck:      apiClient.Health,
			}
			if err := orchestrator.Await(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All services are ready.")
			return nil
		},
	}
}
