package earning

import "context"

type EarningService interface {
	Create(ctx context.Context, req CreateEarningRequest) (EarningResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EarningResponse, error)
	Update(ctx context.Context, req UpdateEarningRequest) (EarningResponse, error)
	Delete(ctx context.Context, id string) error
}
