package inmem

import (
	"sync"

	"github.com/tribeworks/loanflow/internal/session"
)

// Driver represents the in-memory credentials storage driver.
// It is primarily used by tests and ephemeral runs that do not want to touch disk.
type Driver struct {
	mutex sync.RWMutex
	ses   *session.Session
}

var _ session.Storage = (*Driver)(nil)

// New creates a new empty in-memory credentials storage driver
func New() *Driver {
	return &Driver{}
}

// Load retrieves the stored session record
func (driver *Driver) Load() (*session.Session, error) {
	driver.mutex.RLock()
	defer driver.mutex.RUnlock()
	if driver.ses == nil {
		return nil, nil
	}
	cpy := *driver.ses
	return &cpy, nil
}

// Store persists a session record, replacing any previous one
func (driver *Driver) Store(ses *session.Session) error {
	driver.mutex.Lock()
	defer driver.mutex.Unlock()
	cpy := *ses
	driver.ses = &cpy
	return nil
}

// Clear removes the stored session record
func (driver *Driver) Clear() error {
	driver.mutex.Lock()
	defer driver.mutex.Unlock()
	driver.ses = nil
	return nil
}
