package invoice

import (
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	CustomerID string           `json:"customer_id"`
	Number     string           `json:"number"`
	IssueDate  string           `json:"issue_date"`
	DueDate    string           `json:"due_date"`
	Items      []Item           `json:"items"`
	TaxRate    *decimal.Decimal `json:"tax_rate,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Number) {
		errs = append(errs, validator.ValidationError{Field: "number", Message: "is required"})
	}
	issue, okIssue := validator.IsValidDate(r.IssueDate)
	if !okIssue {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "must be YYYY-MM-DD"})
	}
	due, okDue := validator.IsValidDate(r.DueDate)
	if !okDue {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}
	if okIssue && okDue && due.Before(issue) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must not be before issue_date"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line item is required"})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Description) || item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "line items need a description and non-negative quantity and unit_price"})
			break
		}
	}
	if r.TaxRate != nil && (r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInvoiceRequest struct {
	ID      string
	DueDate *string `json:"due_date,omitempty"`
	Items   []Item  `json:"items,omitempty"`
	Status  *string `json:"status,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid invoice status"})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Description) || item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "line items need a description and non-negative quantity and unit_price"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Number       string          `json:"number"`
	IssueDate    string          `json:"issue_date"`
	DueDate      string          `json:"due_date"`
	Items        []Item          `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Notes        *string         `json:"notes,omitempty"`
}

type InvoiceFilter struct {
	CustomerID *string
	Status     *string
	Page       int
	Limit      int
}

type ListInvoiceResponse struct {
	Data       []InvoiceResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
