package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tribeworks/loanflow/internal/loan"
)

func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Show the steps of the loan approval process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, step := range loan.Steps() {
				fmt.Printf("%d. %s - %s\n", step.Ordinal, step.Name, step.Description)
			}
			return nil
		},
	}
}
