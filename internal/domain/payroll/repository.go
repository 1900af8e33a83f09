package payroll

import "context"

type BatchRepository interface {
	Create(ctx context.Context, batch PayrollBatch) (PayrollBatch, error)
	GetByID(ctx context.Context, id string) (PayrollBatch, error)
	// GetByIDForUpdate locks the batch row for the duration of the enclosing
	// transaction so concurrent processing runs serialize.
	GetByIDForUpdate(ctx context.Context, id string) (PayrollBatch, error)
	List(ctx context.Context, limit int) ([]PayrollBatch, error)
	Update(ctx context.Context, req UpdateBatchRequest) error
	UpdateStatus(ctx context.Context, id string, status BatchStatus) error
	UpdateTotals(ctx context.Context, batch PayrollBatch) error
	Delete(ctx context.Context, id string) error
}

type PayrollRepository interface {
	// Upsert inserts or replaces the row keyed by (batch_id, employee_id),
	// making repeated batch processing idempotent.
	Upsert(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByBatchID(ctx context.Context, batchID string) ([]Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	DeleteByBatchID(ctx context.Context, batchID string) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
