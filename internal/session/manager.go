package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/tribeworks/loanflow/internal/threadsafe"
)

// Authenticator exchanges credentials for a session at the auth API.
// It is implemented by the API client; the manager only owns the resulting state.
type Authenticator interface {
	// Login performs the credential exchange and returns the resulting session
	Login(ctx context.Context, username, password string) (*Session, error)
}

// Subscriber is notified whenever the session changes.
// It receives the new session, or nil on logout.
type Subscriber func(ses *Session)

// Manager owns the login/logout transitions of the process-wide session slot.
//
// Login and Logout are safe to call repeatedly and concurrently; overlapping Login
// calls are independent and resolve last-write-wins in both the manager and the
// credentials storage. Callers that require ordering must serialize themselves.
type Manager struct {
	auth    Authenticator
	storage Storage

	mutex   sync.RWMutex
	current *Session

	subscribers   *threadsafe.Map[int64, Subscriber]
	subscriberSeq int64
}

// NewManager creates a new session manager and attempts to reconstruct a session
// from the credentials storage. A malformed or unparsable stored record is treated
// as absent; startup never fails because of corrupt stored credentials.
func NewManager(auth Authenticator, storage Storage) *Manager {
	manager := &Manager{
		auth:        auth,
		storage:     storage,
		subscribers: threadsafe.NewMap[int64, Subscriber](),
	}

	restored, err := storage.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not read the stored credentials; starting logged out")
	} else if restored != nil {
		manager.current = restored
		log.Debug().Str("username", restored.Username).Msg("restored session from credentials storage")
	}
	return manager
}

// Login exchanges the given credentials for a new session and persists it.
// On failure the previous session, if any, is left untouched.
func (manager *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	ses, err := manager.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	manager.mutex.Lock()
	manager.current = ses
	manager.mutex.Unlock()

	if err := manager.storage.Store(ses); err != nil {
		log.Error().Err(err).Msg("could not persist the session to the credentials storage")
	}

	manager.notify(ses)
	return ses, nil
}

// Logout unconditionally clears the session and the credentials storage.
// It is idempotent and never fails; storage errors are logged only.
func (manager *Manager) Logout() {
	manager.mutex.Lock()
	hadSession := manager.current != nil
	manager.current = nil
	manager.mutex.Unlock()

	if err := manager.storage.Clear(); err != nil {
		log.Error().Err(err).Msg("could not clear the credentials storage")
	}

	if hadSession {
		manager.notify(nil)
	}
}

// IsAuthenticated returns whether a session is present
func (manager *Manager) IsAuthenticated() bool {
	return manager.CurrentUser() != nil
}

// CurrentUser returns a copy of the current session, or nil if the user is logged out
func (manager *Manager) CurrentUser() *Session {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()
	if manager.current == nil {
		return nil
	}
	cpy := *manager.current
	return &cpy
}

// Subscribe registers a subscriber that is called on every session change.
// The returned function removes the subscription again.
func (manager *Manager) Subscribe(subscriber Subscriber) func() {
	id := atomic.AddInt64(&manager.subscriberSeq, 1)
	manager.subscribers.Set(id, subscriber)
	return func() {
		manager.subscribers.Remove(id)
	}
}

func (manager *Manager) notify(ses *Session) {
	manager.subscribers.Lock()
	defer manager.subscribers.Unlock()
	for _, subscriber := range manager.subscribers.GetUnderlyingMap() {
		subscriber(ses)
	}
}
