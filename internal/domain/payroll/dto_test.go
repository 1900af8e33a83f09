package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validBatchRequest() CreateBatchRequest {
	return CreateBatchRequest{
		BatchName:      "January 2024",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		EmployeeIDs:    []string{"emp-1"},
	}
}

func TestCreateBatchRequest_Validate(t *testing.T) {
	req := validBatchRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateBatchRequest_PeriodMustBeOrdered(t *testing.T) {
	req := validBatchRequest()
	req.PayPeriodStart = "2024-01-31"
	req.PayPeriodEnd = "2024-01-01"
	assert.Error(t, req.Validate())

	req = validBatchRequest()
	req.PayPeriodEnd = req.PayPeriodStart
	assert.Error(t, req.Validate())
}

func TestCreateBatchRequest_SelectorsAreExclusive(t *testing.T) {
	req := validBatchRequest()
	req.Departments = []string{"Engineering"}
	assert.Error(t, req.Validate())

	req = validBatchRequest()
	req.EmployeeIDs = nil
	assert.Error(t, req.Validate(), "no selector at all")

	req = validBatchRequest()
	req.EmployeeIDs = nil
	req.SelectAll = true
	assert.NoError(t, req.Validate())
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	req := UpdateSettingsRequest{SSSRate: &negative}
	assert.Error(t, req.Validate())

	half := decimal.RequireFromString("0.5")
	req = UpdateSettingsRequest{OvertimeMultiplier: &half}
	assert.Error(t, req.Validate(), "overtime multiplier below 1")

	req = UpdateSettingsRequest{TaxBrackets: []TaxBracket{
		{Over: decimal.Zero, Rate: decimal.Zero},
		{Over: decimal.Zero, Rate: decimal.RequireFromString("0.15")},
	}}
	assert.Error(t, req.Validate(), "thresholds must be strictly increasing")

	req = UpdateSettingsRequest{TaxBrackets: DefaultTaxBrackets()}
	assert.NoError(t, req.Validate())
}
