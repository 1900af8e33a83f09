package payroll

import "context"

type PayrollService interface {
	// Batch lifecycle
	CreateBatch(ctx context.Context, req CreateBatchRequest) (CreateBatchResponse, error)
	GetBatch(ctx context.Context, id string) (BatchResponse, error)
	ListBatches(ctx context.Context, limit int) ([]BatchResponse, error)
	UpdateBatch(ctx context.Context, req UpdateBatchRequest) (BatchResponse, error)
	ProcessBatch(ctx context.Context, id string) (BatchResponse, ProcessSummary, error)
	DeleteBatch(ctx context.Context, id string) error

	// Payroll rows
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)

	// Settings
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

// PayslipService renders and delivers payslip documents for calculated
// payroll records.
type PayslipService interface {
	// Render returns the payslip PDF and a download filename.
	Render(ctx context.Context, payrollID string) ([]byte, string, error)
	// Send emails the payslip to the employee.
	Send(ctx context.Context, payrollID string) error
}
