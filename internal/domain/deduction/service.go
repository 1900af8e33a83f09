package deduction

import "context"

type DeductionService interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]DeductionResponse, error)
	Update(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error
}
