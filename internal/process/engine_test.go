package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribeworks/loanflow/internal/loan"
)

func TestEngineStartAutoApproves(t *testing.T) {
	tests := []struct {
		name  string
		score int
	}{
		{name: "well above threshold", score: 800},
		{name: "exactly threshold", score: 700},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instance := New().Start(map[string]any{"creditScore": test.score})

			assert.Equal(t, loan.ProcessID, instance.BPMNProcessID)
			assert.Equal(t, 1, instance.Version)
			assert.Equal(t, true, instance.Variables["documentsValid"])
			assert.Equal(t, true, instance.Variables["creditCheckComplete"])
			assert.Equal(t, test.score, instance.Variables["creditScore"])
			assert.Equal(t, "APPROVED", instance.Variables["approvalStatus"])
		})
	}
}

func TestEngineStartRoutesToManualReview(t *testing.T) {
	instance := New().Start(map[string]any{"creditScore": 699})

	assert.Equal(t, 699, instance.Variables["creditScore"])
	assert.Equal(t, true, instance.Variables["creditCheckComplete"])
	// The manual review step completes without an approval decision
	assert.NotContains(t, instance.Variables, "approvalStatus")
}

func TestEngineStartAssumesDefaultScore(t *testing.T) {
	instance := New().Start(nil)

	assert.Equal(t, loan.DefaultCreditScore, instance.Variables["creditScore"])
	assert.Equal(t, "APPROVED", instance.Variables["approvalStatus"])
}

func TestEngineStartAssignsUniqueKeys(t *testing.T) {
	engine := New()
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		instance := engine.Start(nil)
		require.False(t, seen[instance.ProcessInstanceKey])
		seen[instance.ProcessInstanceKey] = true
	}
}

func TestEngineStartDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"creditScore": 650}
	New().Start(input)
	assert.Equal(t, map[string]any{"creditScore": 650}, input)
}
