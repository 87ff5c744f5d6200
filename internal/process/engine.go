package process

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tribeworks/loanflow/internal/loan"
)

// Engine simulates the observable boundary of the workflow engine for the fixed
// loan approval process. It assigns process instance keys and runs the four process
// steps synchronously as pure variable transforms; there is no BPMN execution and
// no engine-side persistence.
type Engine struct {
	instanceKey int64
}

// New creates a new engine.
// Instance keys are seeded from the startup time so that keys stay unique across
// restarts of the backend.
func New() *Engine {
	return &Engine{
		instanceKey: time.Now().UnixNano(),
	}
}

// Instance represents one started and completed process instance
type Instance struct {
	ProcessInstanceKey int64
	BPMNProcessID      string
	Version            int
	Variables          map[string]any
}

// Start starts a new instance of the loan approval process with the given variables
// and runs it to completion. The returned variables contain both the submitted and
// the engine-computed fields.
func (engine *Engine) Start(variables map[string]any) *Instance {
	key := atomic.AddInt64(&engine.instanceKey, 1)

	vars := make(map[string]any, len(variables)+4)
	for name, value := range variables {
		vars[name] = value
	}

	validateDocuments(vars)
	checkCredit(vars)
	if routeAutoApproval(vars) {
		autoApprove(vars)
	} else {
		manualReview(vars)
	}

	log.Debug().Int64("process_instance_key", key).Str("bpmn_process_id", loan.ProcessID).Msg("process instance completed")
	return &Instance{
		ProcessInstanceKey: key,
		BPMNProcessID:      loan.ProcessID,
		Version:            1,
		Variables:          vars,
	}
}

// validateDocuments mirrors the 'validate-docs' worker
func validateDocuments(vars map[string]any) {
	vars["documentsValid"] = true
	vars["validationTimestamp"] = time.Now().Format(time.RFC3339)
}

// checkCredit mirrors the 'check-credit' worker: an already provided credit score is
// kept, otherwise the default mock score is assumed
func checkCredit(vars map[string]any) {
	score, ok := creditScore(vars)
	if !ok {
		score = loan.DefaultCreditScore
	}
	vars["creditScore"] = score
	vars["creditCheckComplete"] = true
	vars["creditCheckTimestamp"] = time.Now().Format(time.RFC3339)
}

// routeAutoApproval is the single data-driven branch point of the process
func routeAutoApproval(vars map[string]any) bool {
	score, ok := creditScore(vars)
	return ok && score >= loan.AutoApprovalThreshold
}

// autoApprove mirrors the 'auto-approve' worker
func autoApprove(vars map[string]any) {
	vars["approvalStatus"] = "APPROVED"
}

// manualReview mirrors the 'manual-review' worker, which completes without updates
func manualReview(vars map[string]any) {
	log.Debug().Interface("variables", vars).Msg("application routed to manual review")
}

func creditScore(vars map[string]any) (int, bool) {
	switch val := vars["creditScore"].(type) {
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
