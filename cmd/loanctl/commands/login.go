package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in to the loan portal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ses, err := sessions.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s.\n", ses.Username)
			return nil
		},
	}
}
