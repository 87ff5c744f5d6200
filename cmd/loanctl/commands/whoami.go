package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the currently logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ses := sessions.CurrentUser()
			if ses == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("Logged in as %s.\n", ses.Username)
			return nil
		},
	}
}
