package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tribeworks/loanflow/internal/client"
	"github.com/tribeworks/loanflow/internal/loan"
)

func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <credit-score>",
		Short: "Submit a credit score and start a loan approval process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Protected calls must not be attempted while logged out
			if !sessions.IsAuthenticated() {
				return errors.New("not logged in; run 'loanctl login' first")
			}

			score, err := strconv.Atoi(args[0])
			if err != nil {
				return &loan.ValidationError{Reason: fmt.Sprintf("credit score must be a number, got %q", args[0])}
			}

			submitter := client.NewSubmitter(apiClient)
			result, err := submitter.Submit(cmd.Context(), &score)
			if err != nil {
				return err
			}

			fmt.Printf("Process started: instance key %d (%s, version %d)\n", result.ProcessInstanceKey, result.BPMNProcessID, result.Version)
			if echoed, ok := result.CreditScore(); ok {
				fmt.Printf("Credit score: %d\n", echoed)
			}
			fmt.Println(loan.DecisionNarrative(result).Message())
			return nil
		},
	}
}
