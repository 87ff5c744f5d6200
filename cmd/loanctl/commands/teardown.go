package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tribeworks/loanflow/internal/readiness"
)

func teardownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Stop and remove the dependent service topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := &readiness.ComposeSource{File: cfg.ComposeFile}
			source.Teardown(cmd.Context())
			fmt.Println("Teardown finished.")
			return nil
		},
	}
}
