package storage

import (
	"context"

	"github.com/tribeworks/loanflow/internal/loan"
	"github.com/tribeworks/loanflow/internal/user"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Users provides a user repository implementation
	Users() user.Repository

	// LoanApplications provides a loan application repository implementation
	LoanApplications() loan.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
