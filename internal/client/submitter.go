package client

import (
	"context"
	"sync"

	"github.com/tribeworks/loanflow/internal/loan"
)

// SubmissionState describes the state of the most recent submission on a Submitter
type SubmissionState string

const (
	// StateIdle means no submission has been started yet, or the state was reset
	StateIdle SubmissionState = "idle"

	// StateSubmitting means a submission is currently in flight
	StateSubmitting SubmissionState = "submitting"

	// StateSucceeded means the most recent submission returned a process result
	StateSucceeded SubmissionState = "succeeded"

	// StateFailed means the most recent submission failed
	StateFailed SubmissionState = "failed"
)

// Submitter serializes loan submissions on top of the API client.
//
// Exactly one submission is in flight at a time; a Submit call while another one is
// running is rejected with ErrSubmissionInFlight instead of racing it. The submitter
// holds the most recent result only, discarding the prior one when a new submission
// begins. There is no cancellation beyond the request context; callers that want to
// stop a submission must prevent the triggering action instead.
type Submitter struct {
	client *Client

	mutex  sync.Mutex
	state  SubmissionState
	result *loan.ProcessResult
	err    error
}

// NewSubmitter creates a new idle submitter on top of the given API client
func NewSubmitter(client *Client) *Submitter {
	return &Submitter{
		client: client,
		state:  StateIdle,
	}
}

// Submit validates and submits a credit score and records the outcome
func (submitter *Submitter) Submit(ctx context.Context, creditScore *int) (*loan.ProcessResult, error) {
	submitter.mutex.Lock()
	if submitter.state == StateSubmitting {
		submitter.mutex.Unlock()
		return nil, ErrSubmissionInFlight
	}
	submitter.state = StateSubmitting
	submitter.result = nil
	submitter.err = nil
	submitter.mutex.Unlock()

	result, err := submitter.client.StartLoanProcess(ctx, creditScore)

	submitter.mutex.Lock()
	defer submitter.mutex.Unlock()
	if err != nil {
		submitter.state = StateFailed
		submitter.err = err
		return nil, err
	}
	submitter.state = StateSucceeded
	submitter.result = result
	return result, nil
}

// State returns the state of the most recent submission
func (submitter *Submitter) State() SubmissionState {
	submitter.mutex.Lock()
	defer submitter.mutex.Unlock()
	return submitter.state
}

// Result returns the most recent submission outcome
func (submitter *Submitter) Result() (*loan.ProcessResult, error) {
	submitter.mutex.Lock()
	defer submitter.mutex.Unlock()
	return submitter.result, submitter.err
}
