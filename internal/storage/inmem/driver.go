package inmem

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/tribeworks/loanflow/internal/loan"
	"github.com/tribeworks/loanflow/internal/storage"
	"github.com/tribeworks/loanflow/internal/user"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"users": {
			Name: "users",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Username"},
				},
			},
		},
		"loan_applications": {
			Name: "loan_applications",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"created": {
					Name:         "created",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.IntFieldIndex{Field: "CreatedAtNano"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver implementation built using hashicorp/go-memdb.
// It backs tests and database-less demo runs of the backend.
type Driver struct {
	db           *memdb.MemDB
	users        *UserRepository
	applications *LoanApplicationRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver.
// Use Initialize to initialize the repository implementations.
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.users = &UserRepository{db: db}
	driver.applications = &LoanApplicationRepository{db: db}
	return nil
}

// Users provides the in-memory user repository implementation
func (driver *Driver) Users() user.Repository {
	return driver.users
}

// LoanApplications provides the in-memory loan application repository implementation
func (driver *Driver) LoanApplications() loan.Repository {
	return driver.applications
}

// Close discards the repository implementations and the in-memory database
func (driver *Driver) Close() {
	driver.users = nil
	driver.applications = nil
	driver.db = nil
}
