package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	List(ctx context.Context, filter ExpenseFilter) (ListExpenseResponse, error)
	Approve(ctx context.Context, id string) (ExpenseResponse, error)
	Reject(ctx context.Context, id string) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error

	CreateReimbursement(ctx context.Context, req CreateReimbursementRequest) (ReimbursementResponse, error)
	GetReimbursement(ctx context.Context, id string) (ReimbursementResponse, error)
	ListReimbursements(ctx context.Context) ([]ReimbursementResponse, error)
	UpdateReimbursementStatus(ctx context.Context, id, status string) (ReimbursementResponse, error)
	DeleteReimbursement(ctx context.Context, id string) error
}
