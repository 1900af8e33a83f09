package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from BatchStatus
		to   BatchStatus
		want bool
	}{
		{BatchStatusDraft, BatchStatusProcessing, true},
		{BatchStatusDraft, BatchStatusCalculated, true},
		{BatchStatusProcessing, BatchStatusCalculated, true},
		{BatchStatusCalculated, BatchStatusApproved, true},
		{BatchStatusApproved, BatchStatusPaid, true},
		{BatchStatusDraft, BatchStatusDraft, true},

		// Backward moves are rejected.
		{BatchStatusCalculated, BatchStatusDraft, false},
		{BatchStatusApproved, BatchStatusCalculated, false},
		{BatchStatusPaid, BatchStatusApproved, false},

		// Cancellation is allowed from any pre-PAID state only.
		{BatchStatusDraft, BatchStatusCancelled, true},
		{BatchStatusCalculated, BatchStatusCancelled, true},
		{BatchStatusApproved, BatchStatusCancelled, true},
		{BatchStatusPaid, BatchStatusCancelled, false},

		// Terminal states cannot move.
		{BatchStatusCancelled, BatchStatusDraft, false},
		{BatchStatusCancelled, BatchStatusPaid, false},
		{BatchStatusPaid, BatchStatusDraft, false},
	}

	for _, c := range cases {
		got := c.from.CanTransition(c.to)
		assert.Equal(t, c.want, got, "%s -> %s", c.from, c.to)
	}
}

func TestBatchStatus_Terminal(t *testing.T) {
	assert.True(t, BatchStatusPaid.Terminal())
	assert.True(t, BatchStatusCancelled.Terminal())
	assert.False(t, BatchStatusDraft.Terminal())
	assert.False(t, BatchStatusCalculated.Terminal())
}

func TestDefaultTaxBrackets_StrictlyIncreasing(t *testing.T) {
	brackets := DefaultTaxBrackets()
	for i := 1; i < len(brackets); i++ {
		assert.True(t, brackets[i].Over.GreaterThan(brackets[i-1].Over),
			"bracket %d threshold %s not above %s", i, brackets[i].Over, brackets[i-1].Over)
	}
}
