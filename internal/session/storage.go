package session

// Storage defines the durable credentials storage API.
// It mirrors the single process-wide session slot across restarts; the session
// lifecycle itself is owned exclusively by the Manager.
type Storage interface {
	// Load retrieves the stored session record.
	// A missing or malformed record yields (nil, nil); the holder treats that as logged out.
	Load() (*Session, error)

	// Store persists a session record, replacing any previous one
	Store(ses *Session) error

	// Clear removes the stored session record.
	// Clearing an empty storage is a no-op.
	Clear() error
}
