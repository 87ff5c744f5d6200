package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tribeworks/loanflow/internal/hashmap"
	"github.com/tribeworks/loanflow/internal/loan"
	"github.com/tribeworks/loanflow/internal/storage"
	"github.com/tribeworks/loanflow/internal/user"
)

// Driver represents a storage driver implementation that wraps another one in order to implement in-memory caching
type Driver struct {
	underlying   storage.Driver
	users        *UserRepository
	applications *LoanApplicationRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver
func New(underlying storage.Driver) *Driver {
	return &Driver{
		underlying: underlying,
	}
}

// Initialize initializes the caching repositories
func (driver *Driver) Initialize(_ context.Context) error {
	userCache := hashmap.NewExpiring[string, *user.User](5 * time.Minute)
	userCache.ScheduleCleanupTask(10 * time.Second)
	driver.users = &UserRepository{
		repo:  driver.underlying.Users(),
		cache: userCache,
	}

	applicationCache := hashmap.NewExpiring[uuid.UUID, *loan.Application](5 * time.Minute)
	applicationCache.ScheduleCleanupTask(10 * time.Second)
	driver.applications = &LoanApplicationRepository{
		repo:  driver.underlying.LoanApplications(),
		cache: applicationCache,
	}

	return nil
}

// Users provides the caching user repository implementation
func (driver *Driver) Users() user.Repository {
	return driver.users
}

// LoanApplications provides the caching loan application repository implementation
func (driver *Driver) LoanApplications() loan.Repository {
	return driver.applications
}

// Close closes the caching repositories and the underlying storage driver
func (driver *Driver) Close() {
	driver.users.cache.StopCleanupTask()
	driver.users = nil
	driver.applications.cache.StopCleanupTask()
	driver.applications = nil
	driver.underlying.Close()
}
