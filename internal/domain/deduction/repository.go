package deduction

import (
	"context"
	"time"
)

type DeductionRepository interface {
	Create(ctx context.Context, d Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string) (Deduction, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Deduction, error)
	Update(ctx context.Context, req UpdateDeductionRequest) error
	Delete(ctx context.Context, id string) error

	// GetActiveInPeriod applies the same active-window selection as earnings.
	GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Deduction, error)
}
