package deduction

import (
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateDeductionRequest accepts the wire shape with two optional fields;
// exactly one of amount and percentage must be set. Past validation the
// value is carried as the tagged Kind/Value pair.
type CreateDeductionRequest struct {
	EmployeeID    string           `json:"-"`
	Name          string           `json:"name"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	Frequency     string           `json:"frequency"`
	EffectiveDate string           `json:"effective_date"`
	EndDate       *string          `json:"end_date,omitempty"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch {
	case r.Amount != nil && r.Percentage != nil:
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount and percentage are mutually exclusive"})
	case r.Amount == nil && r.Percentage == nil:
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "either amount or percentage is required"})
	case r.Amount != nil && r.Amount.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	case r.Percentage != nil && (r.Percentage.IsNegative() || r.Percentage.GreaterThan(decimal.NewFromInt(100))):
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be between 0 and 100"})
	}
	if !Frequency(r.Frequency).Valid() {
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "is not a valid frequency"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Variant returns the tagged form of the validated request.
func (r *CreateDeductionRequest) Variant() (Kind, decimal.Decimal) {
	if r.Percentage != nil {
		return KindPercentage, *r.Percentage
	}
	return KindFixedAmount, *r.Amount
}

type UpdateDeductionRequest struct {
	ID       string
	Name     *string          `json:"name,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	EndDate  *string          `json:"end_date,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	Value         decimal.Decimal `json:"value"`
	Frequency     string          `json:"frequency"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date,omitempty"`
	IsActive      bool            `json:"is_active"`
}
