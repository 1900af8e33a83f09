package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateDeductionRequest {
	amount := decimal.NewFromInt(500)
	return CreateDeductionRequest{
		EmployeeID:    "emp-1",
		Name:          "Loan repayment",
		Amount:        &amount,
		Frequency:     string(FrequencyMonthly),
		EffectiveDate: "2024-01-01",
	}
}

func TestCreateDeductionRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateDeductionRequest_AmountAndPercentageExclusive(t *testing.T) {
	req := validCreateRequest()
	pct := decimal.NewFromInt(5)
	req.Percentage = &pct

	assert.Error(t, req.Validate())
}

func TestCreateDeductionRequest_RequiresAmountOrPercentage(t *testing.T) {
	req := validCreateRequest()
	req.Amount = nil
	req.Percentage = nil

	assert.Error(t, req.Validate())
}

func TestCreateDeductionRequest_PercentageBounds(t *testing.T) {
	req := validCreateRequest()
	req.Amount = nil
	over := decimal.NewFromInt(120)
	req.Percentage = &over
	assert.Error(t, req.Validate())

	ok := decimal.NewFromInt(100)
	req.Percentage = &ok
	assert.NoError(t, req.Validate())
}

func TestCreateDeductionRequest_Variant(t *testing.T) {
	req := validCreateRequest()
	kind, value := req.Variant()
	assert.Equal(t, KindFixedAmount, kind)
	assert.True(t, value.Equal(decimal.NewFromInt(500)))

	pct := decimal.NewFromInt(3)
	req.Amount = nil
	req.Percentage = &pct
	kind, value = req.Variant()
	assert.Equal(t, KindPercentage, kind)
	assert.True(t, value.Equal(decimal.NewFromInt(3)))
}

func TestDeduction_AmountFor(t *testing.T) {
	fixed := Deduction{Kind: KindFixedAmount, Value: decimal.NewFromInt(750)}
	assert.True(t, fixed.AmountFor(decimal.NewFromInt(50000)).Equal(decimal.NewFromInt(750)))

	pct := Deduction{Kind: KindPercentage, Value: decimal.NewFromInt(2)}
	got := pct.AmountFor(decimal.NewFromInt(50000))
	require.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}
