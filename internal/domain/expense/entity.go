package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Expense struct {
	ID              string
	Category        string
	Description     string
	Amount          decimal.Decimal
	ExpenseDate     time.Time
	Status          Status
	SubmittedBy     string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	ReimbursementID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReimbursementStatus string

const (
	ReimbursementStatusDraft     ReimbursementStatus = "DRAFT"
	ReimbursementStatusSubmitted ReimbursementStatus = "SUBMITTED"
	ReimbursementStatusPaid      ReimbursementStatus = "PAID"
)

func (s ReimbursementStatus) Valid() bool {
	switch s {
	case ReimbursementStatusDraft, ReimbursementStatusSubmitted, ReimbursementStatusPaid:
		return true
	}
	return false
}

// Reimbursement is a customer-billable claim over a set of approved
// expenses. TotalAmount is always the sum of its member expenses.
type Reimbursement struct {
	ID          string
	CustomerID  string
	Description string
	TotalAmount decimal.Decimal
	Status      ReimbursementStatus
	ExpenseIDs  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	CustomerName *string
}
