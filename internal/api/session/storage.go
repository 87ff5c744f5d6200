package session

import "context"

// Storage defines the server-side session storage API
type Storage interface {
	// GetByRawToken retrieves a non-expired session by its raw (prior hashing) token
	GetByRawToken(ctx context.Context, rawToken string) (*Session, error)

	// Create creates a new session and returns its raw token
	Create(ctx context.Context, username string, expires int64) (string, error)

	// TerminateByUsername terminates all sessions of a specific user
	TerminateByUsername(ctx context.Context, username string) error

	// TerminateExpired terminates all sessions that are expired
	TerminateExpired(ctx context.Context) (int, error)
}
