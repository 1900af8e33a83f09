package earning

import (
	"context"
	"time"
)

type EarningRepository interface {
	Create(ctx context.Context, e Earning) (Earning, error)
	GetByID(ctx context.Context, id string) (Earning, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Earning, error)
	Update(ctx context.Context, req UpdateEarningRequest) error
	Delete(ctx context.Context, id string) error

	// GetActiveInPeriod selects rows with is_active AND effective_date <=
	// periodEnd AND (end_date IS NULL OR end_date >= periodStart).
	GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Earning, error)
}
