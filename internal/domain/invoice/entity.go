package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSent      Status = "SENT"
	StatusPaid      Status = "PAID"
	StatusOverdue   Status = "OVERDUE"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Item is one invoice line. Items are stored as a jsonb document on the
// invoice row; totals are always recomputed server-side from the lines.
type Item struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (i Item) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

type Invoice struct {
	ID         string
	CustomerID string
	Number     string
	IssueDate  time.Time
	DueDate    time.Time
	Items      []Item
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	Total      decimal.Decimal
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	CustomerName  *string
	CustomerEmail *string
}

// ComputeTotals recomputes subtotal, tax and total from the line items,
// rounding each to 2 decimal places.
func (inv *Invoice) ComputeTotals() {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Total())
	}
	inv.Subtotal = subtotal.Round(2)
	inv.TaxAmount = subtotal.Mul(inv.TaxRate).Round(2)
	inv.Total = inv.Subtotal.Add(inv.TaxAmount)
}
