package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	GetByIDs(ctx context.Context, ids []string) ([]Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]Expense, int64, error)
	UpdateReview(ctx context.Context, id string, status Status, reviewedBy string) error
	SetReimbursement(ctx context.Context, expenseIDs []string, reimbursementID string) error
	Delete(ctx context.Context, id string) error
}

type ReimbursementRepository interface {
	Create(ctx context.Context, r Reimbursement) (Reimbursement, error)
	GetByID(ctx context.Context, id string) (Reimbursement, error)
	List(ctx context.Context) ([]Reimbursement, error)
	UpdateStatus(ctx context.Context, id string, status ReimbursementStatus) error
	Delete(ctx context.Context, id string) error
}
