package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	// Payroll selector resolution
	GetActive(ctx context.Context) ([]Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	GetActiveByDepartments(ctx context.Context, departments []string) ([]Employee, error)
}
