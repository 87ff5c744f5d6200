package loan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// The credit score bounds and the auto-approval threshold.
// The threshold is shared between the server-side routing decision and the
// client-side narrative; both must resolve to this single constant.
const (
	MinCreditScore        = 300
	MaxCreditScore        = 850
	AutoApprovalThreshold = 700

	// DefaultCreditScore is assumed by the credit check step when no score was
	// submitted with the application.
	DefaultCreditScore = 750
)

// ProcessID identifies the loan approval process definition
const ProcessID = "loanApprovalProcess"

// Submission represents a single loan submission as entered by the user.
// It is constructed per user action and consumed immediately.
type Submission struct {
	CreditScore *int `json:"creditScore"`
}

// Validate checks the submission before it is allowed to reach the network.
// A missing or out-of-range credit score yields a *ValidationError.
func (submission *Submission) Validate() error {
	return ValidateScore(submission.CreditScore)
}

// ValidateScore checks that a credit score is present and inside [MinCreditScore, MaxCreditScore]
func ValidateScore(score *int) error {
	if score == nil {
		return &ValidationError{Reason: "credit score is required"}
	}
	if *score < MinCreditScore || *score > MaxCreditScore {
		return &ValidationError{
			Score:  score,
			Reason: fmt.Sprintf("credit score must be between %d and %d", MinCreditScore, MaxCreditScore),
		}
	}
	return nil
}

// ValidationError is raised locally whenever a submission is rejected before any network call
type ValidationError struct {
	Score  *int
	Reason string
}

// Error returns the human-readable reason of the validation failure
func (err *ValidationError) Error() string {
	return err.Reason
}

// ProcessResult represents the server response to a successfully started process instance
type ProcessResult struct {
	ProcessInstanceKey int64          `json:"processInstanceKey"`
	BPMNProcessID      string         `json:"bpmnProcessId"`
	Version            int            `json:"version"`
	Variables          map[string]any `json:"variables"`
}

// CreditScore extracts the echoed credit score out of the process variables.
// The second return value reports whether a numeric score was present.
func (result *ProcessResult) CreditScore() (int, bool) {
	raw, ok := result.Variables["creditScore"]
	if !ok {
		return 0, false
	}
	switch val := raw.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}

// Narrative classifies the routing outcome of a started process instance
type Narrative string

const (
	// NarrativeAutoApproval is the classification for scores >= AutoApprovalThreshold
	NarrativeAutoApproval Narrative = "auto-approval"

	// NarrativeManualReview is the classification for scores < AutoApprovalThreshold
	NarrativeManualReview Narrative = "manual-review"
)

// Message returns the user-facing description of the routing outcome
func (narrative Narrative) Message() string {
	if narrative == NarrativeAutoApproval {
		return "Your application will be processed automatically (Auto-approval path)"
	}
	return "Your application requires manual review"
}

// DecisionNarrative derives the display classification from the credit score echoed
// by the server. It is a pure derivation of the server-side routing decision, not a
// second source of truth; the score defaults to DefaultCreditScore when the server
// did not echo one, mirroring the credit check step.
func DecisionNarrative(result *ProcessResult) Narrative {
	score, ok := result.CreditScore()
	if !ok {
		score = DefaultCreditScore
	}
	if score >= AutoApprovalThreshold {
		return NarrativeAutoApproval
	}
	return NarrativeManualReview
}

// Application status values as persisted by the demo backend
const (
	StatusPending      = "PENDING"
	StatusAutoApproved = "AUTO_APPROVED"
	StatusManualReview = "MANUAL_REVIEW"
)

// Application represents a loan application record as persisted by the demo backend
type Application struct {
	ID                 uuid.UUID `json:"id"`
	Applicant          string    `json:"applicant"`
	CreditScore        int       `json:"credit_score"`
	Status             string    `json:"status"`
	ProcessInstanceKey int64     `json:"process_instance_key"`
	CreatedAt          time.Time `json:"created_at"`
}
