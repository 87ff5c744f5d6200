package main

import (
	"os"

	"github.com/tribeworks/loanflow/cmd/loanctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
