package file

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tribeworks/loanflow/internal/session"
)

// Driver represents the file-based credentials storage driver.
// It keeps a single JSON-encoded session record at a fixed path, the equivalent
// of the browser client's localStorage slot.
type Driver struct {
	path string
}

var _ session.Storage = (*Driver)(nil)

// New creates a new file-based credentials storage driver operating on the given path
func New(path string) *Driver {
	return &Driver{
		path: path,
	}
}

// Load retrieves the stored session record.
// A missing, unreadable or malformed file yields (nil, nil) so that the holder
// falls open to the logged-out state instead of crashing on corrupt state.
func (driver *Driver) Load() (*session.Session, error) {
	raw, err := os.ReadFile(driver.path)
	if err != nil {
		return nil, nil
	}

	ses := new(session.Session)
	if err := json.Unmarshal(raw, ses); err != nil {
		return nil, nil
	}
	if !ses.Valid() {
		return nil, nil
	}
	return ses, nil
}

// Store persists a session record, replacing any previous one
func (driver *Driver) Store(ses *session.Session) error {
	raw, err := json.Marshal(ses)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(driver.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(driver.path, raw, 0o600)
}

// Clear removes the stored session record
func (driver *Driver) Clear() error {
	if err := os.Remove(driver.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
