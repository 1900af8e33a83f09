package expense

import (
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "expense_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	ExpenseDate     string          `json:"expense_date"`
	Status          string          `json:"status"`
	SubmittedBy     string          `json:"submitted_by"`
	ReviewedBy      *string         `json:"reviewed_by,omitempty"`
	ReimbursementID *string         `json:"reimbursement_id,omitempty"`
}

type ExpenseFilter struct {
	Category *string
	Status   *string
	Page     int
	Limit    int
}

type ListExpenseResponse struct {
	Data       []ExpenseResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type CreateReimbursementRequest struct {
	CustomerID  string   `json:"customer_id"`
	Description string   `json:"description"`
	ExpenseIDs  []string `json:"expense_ids"`
}

func (r *CreateReimbursementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "is required"})
	}
	if len(r.ExpenseIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "expense_ids", Message: "at least one expense is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReimbursementResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	ExpenseIDs   []string        `json:"expense_ids"`
}
