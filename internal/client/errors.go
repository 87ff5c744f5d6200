package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when a protected call is rejected by the server.
	// By contract this situation is prevented by UI gating rather than handled.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSubmissionInFlight is returned when a submission is started while another one
	// is still in flight on the same submitter
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// AuthenticationError is returned when a login attempt is rejected by the server
type AuthenticationError struct {
	Message string
}

// Error returns the server-provided rejection message
func (err *AuthenticationError) Error() string {
	return err.Message
}

// SubmissionError is returned when a loan submission fails on the transport level,
// including deliberately aborted requests. It is never raised for validation or
// authentication failures.
type SubmissionError struct {
	Err error
}

// Error returns the generic user-facing submission failure message
func (err *SubmissionError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("failed to start loan process: %s", err.Err)
	}
	return "failed to start loan process"
}

// Unwrap exposes the underlying transport error
func (err *SubmissionError) Unwrap() error {
	return err.Err
}
