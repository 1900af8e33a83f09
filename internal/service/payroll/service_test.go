package payroll

import (
	"context"
	"maps"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. Unused interface methods are inherited from the embedded
// interface and panic if called, which is exactly what we want in tests.

// fakeTxManager snapshots the fake stores before running fn and restores
// them when fn fails, mirroring a rolled-back transaction.
type fakeTxManager struct {
	batchRepo   *fakeBatchRepo
	payrollRepo *fakePayrollRepo
}

func (m fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	batches := maps.Clone(m.batchRepo.batches)
	rows := maps.Clone(m.payrollRepo.rows)
	if err := fn(ctx); err != nil {
		m.batchRepo.batches = batches
		m.payrollRepo.rows = rows
		return err
	}
	return nil
}

type fakeBatchRepo struct {
	payroll.BatchRepository
	batches map[string]payroll.PayrollBatch
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{batches: make(map[string]payroll.PayrollBatch)}
}

func (r *fakeBatchRepo) Create(ctx context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	batch.ID = uuid.NewString()
	r.batches[batch.ID] = batch
	return batch, nil
}

func (r *fakeBatchRepo) GetByID(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	b, ok := r.batches[id]
	if !ok {
		return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
	}
	return b, nil
}

func (r *fakeBatchRepo) GetByIDForUpdate(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBatchRepo) UpdateStatus(ctx context.Context, id string, status payroll.BatchStatus) error {
	b, ok := r.batches[id]
	if !ok {
		return payroll.ErrBatchNotFound
	}
	b.Status = status
	r.batches[id] = b
	return nil
}

func (r *fakeBatchRepo) UpdateTotals(ctx context.Context, batch payroll.PayrollBatch) error {
	b, ok := r.batches[batch.ID]
	if !ok {
		return payroll.ErrBatchNotFound
	}
	b.TotalEmployees = batch.TotalEmployees
	b.TotalGrossPay = batch.TotalGrossPay
	b.TotalDeductions = batch.TotalDeductions
	b.TotalNetPay = batch.TotalNetPay
	r.batches[batch.ID] = b
	return nil
}

func (r *fakeBatchRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.batches[id]; !ok {
		return payroll.ErrBatchNotFound
	}
	delete(r.batches, id)
	return nil
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	rows map[string]payroll.Payroll // keyed by batchID + employeeID
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{rows: make(map[string]payroll.Payroll)}
}

func (r *fakePayrollRepo) Upsert(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	key := record.BatchID + "/" + record.EmployeeID
	if existing, ok := r.rows[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.NewString()
	}
	r.rows[key] = record
	return record, nil
}

func (r *fakePayrollRepo) DeleteByBatchID(ctx context.Context, batchID string) error {
	for key, row := range r.rows {
		if row.BatchID == batchID {
			delete(r.rows, key)
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.employees, nil
}

func (r *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		for _, id := range ids {
			if emp.ID == id {
				out = append(out, emp)
			}
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetActiveByDepartments(ctx context.Context, departments []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		for _, d := range departments {
			if emp.Department == d {
				out = append(out, emp)
			}
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	byEmployee map[string][]attendance.Attendance
}

func (r *fakeAttendanceRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]attendance.Attendance, error) {
	return r.byEmployee[employeeID], nil
}

type fakeEarningRepo struct {
	earning.EarningRepository
	byEmployee map[string][]earning.Earning
}

func (r *fakeEarningRepo) GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]earning.Earning, error) {
	return r.byEmployee[employeeID], nil
}

type fakeDeductionRepo struct {
	deduction.DeductionRepository
	byEmployee map[string][]deduction.Deduction
}

func (r *fakeDeductionRepo) GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]deduction.Deduction, error) {
	return r.byEmployee[employeeID], nil
}

type fakeSettingsRepo struct {
	settings *payroll.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (payroll.Settings, error) {
	if r.settings == nil {
		return payroll.Settings{}, payroll.ErrSettingsNotFound
	}
	return *r.settings, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	r.settings = &settings
	return settings, nil
}

type fixture struct {
	service     payroll.PayrollService
	batchRepo   *fakeBatchRepo
	payrollRepo *fakePayrollRepo
	settings    *fakeSettingsRepo
}

func newFixture(employees []employee.Employee) fixture {
	batchRepo := newFakeBatchRepo()
	payrollRepo := newFakePayrollRepo()
	settings := &fakeSettingsRepo{}
	svc := NewPayrollService(
		fakeTxManager{batchRepo: batchRepo, payrollRepo: payrollRepo},
		batchRepo,
		payrollRepo,
		settings,
		&fakeEmployeeRepo{employees: employees},
		&fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}},
		&fakeEarningRepo{byEmployee: map[string][]earning.Earning{}},
		&fakeDeductionRepo{byEmployee: map[string][]deduction.Deduction{}},
	)
	return fixture{service: svc, batchRepo: batchRepo, payrollRepo: payrollRepo, settings: settings}
}

func activeEmployee(id, code, department, baseSalary string) employee.Employee {
	return employee.Employee{
		ID:           id,
		EmployeeCode: code,
		FullName:     "Employee " + code,
		Department:   department,
		Status:       employee.StatusActive,
		BaseSalary:   decimal.RequireFromString(baseSalary),
	}
}

func TestCreateBatch_ProcessesImmediately(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
		activeEmployee("emp-2", "EMP-002", "Engineering", "30000"),
	})

	resp, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "January 2024",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		SelectAll:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(payroll.BatchStatusCalculated), resp.Batch.Status)
	assert.Equal(t, 2, resp.Summary.Successful)
	assert.Equal(t, 0, resp.Summary.Failed)
	assert.Equal(t, 2, resp.Batch.TotalEmployees)
	assert.True(t, resp.Batch.TotalGrossPay.Equal(decimal.NewFromInt(80000)))
	assert.Len(t, f.payrollRepo.rows, 2)
}

func TestCreateBatch_RejectedRunLeavesNoBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	_, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "Nobody to pay",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		SelectAll:      true,
	})
	require.ErrorIs(t, err, payroll.ErrEmptyEmployeeSelection)

	// Create and process share one transaction, so the rejected run must
	// not leave a batch row behind.
	assert.Empty(t, f.batchRepo.batches)
	assert.Empty(t, f.payrollRepo.rows)
}

func TestProcessBatch_IdempotentReprocessing(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
	})

	resp, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "January 2024",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		SelectAll:      true,
	})
	require.NoError(t, err)

	// Reprocessing replaces rows instead of duplicating them.
	_, summary, err := f.service.ProcessBatch(ctx, resp.Batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
	assert.Len(t, f.payrollRepo.rows, 1)
}

func TestProcessBatch_TerminalBatchRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
	})

	batch, err := f.batchRepo.Create(ctx, payroll.PayrollBatch{
		Name:        "Paid run",
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:      payroll.BatchStatusPaid,
		SelectAll:   true,
	})
	require.NoError(t, err)

	_, _, err = f.service.ProcessBatch(ctx, batch.ID)
	assert.ErrorIs(t, err, payroll.ErrBatchTerminal)
}

func TestProcessBatch_EmptySelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	batch, err := f.batchRepo.Create(ctx, payroll.PayrollBatch{
		Name:        "Empty run",
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:      payroll.BatchStatusDraft,
		SelectAll:   true,
	})
	require.NoError(t, err)

	_, _, err = f.service.ProcessBatch(ctx, batch.ID)
	assert.ErrorIs(t, err, payroll.ErrEmptyEmployeeSelection)
}

func TestProcessBatch_CountsCalculationFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
		activeEmployee("emp-2", "EMP-002", "Engineering", "-1"),
	})

	resp, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "January 2024",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		SelectAll:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Failed)
	assert.Equal(t, 1, resp.Batch.TotalEmployees)
	assert.Len(t, f.payrollRepo.rows, 1)
}

func TestProcessBatch_DepartmentSelector(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
		activeEmployee("emp-2", "EMP-002", "Sales", "30000"),
	})

	resp, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "Sales January",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		Departments:    []string{"Sales"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Successful)
	assert.True(t, resp.Batch.TotalGrossPay.Equal(decimal.NewFromInt(30000)))
}

func TestDeleteBatch_PaidGuard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	batch, err := f.batchRepo.Create(ctx, payroll.PayrollBatch{
		Name:   "Paid run",
		Status: payroll.BatchStatusPaid,
	})
	require.NoError(t, err)

	err = f.service.DeleteBatch(ctx, batch.ID)
	assert.ErrorIs(t, err, payroll.ErrBatchPaid)
	_, err = f.batchRepo.GetByID(ctx, batch.ID)
	assert.NoError(t, err, "paid batch must survive the delete attempt")
}

func TestDeleteBatch_RemovesRowsFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]employee.Employee{
		activeEmployee("emp-1", "EMP-001", "Engineering", "50000"),
	})

	resp, err := f.service.CreateBatch(ctx, payroll.CreateBatchRequest{
		BatchName:      "January 2024",
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		SelectAll:      true,
	})
	require.NoError(t, err)
	require.Len(t, f.payrollRepo.rows, 1)

	require.NoError(t, f.service.DeleteBatch(ctx, resp.Batch.ID))
	assert.Empty(t, f.payrollRepo.rows)
	_, err = f.batchRepo.GetByID(ctx, resp.Batch.ID)
	assert.ErrorIs(t, err, payroll.ErrBatchNotFound)
}

func TestUpdateBatch_ForwardOnlyTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	batch, err := f.batchRepo.Create(ctx, payroll.PayrollBatch{
		Name:   "Run",
		Status: payroll.BatchStatusApproved,
	})
	require.NoError(t, err)

	backward := string(payroll.BatchStatusDraft)
	_, err = f.service.UpdateBatch(ctx, payroll.UpdateBatchRequest{ID: batch.ID, Status: &backward})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusChange)

	paid, err := f.batchRepo.Create(ctx, payroll.PayrollBatch{
		Name:   "Done",
		Status: payroll.BatchStatusPaid,
	})
	require.NoError(t, err)

	cancelled := string(payroll.BatchStatusCancelled)
	_, err = f.service.UpdateBatch(ctx, payroll.UpdateBatchRequest{ID: paid.ID, Status: &cancelled})
	assert.ErrorIs(t, err, payroll.ErrBatchTerminal)
}

func TestGetSettings_DefaultsWhenUnsaved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	resp, err := f.service.GetSettings(ctx)
	require.NoError(t, err)

	defaults := payroll.DefaultPolicy()
	assert.True(t, resp.SSSRate.Equal(defaults.SSSRate))
	assert.True(t, resp.StandardMonthlyHours.Equal(defaults.StandardMonthlyHours))
	assert.Len(t, resp.TaxBrackets, len(defaults.TaxBrackets))
	assert.False(t, resp.CustomDeductionsTaxable)
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)

	newRate := decimal.RequireFromString("0.05")
	resp, err := f.service.UpdateSettings(ctx, payroll.UpdateSettingsRequest{SSSRate: &newRate})
	require.NoError(t, err)

	defaults := payroll.DefaultPolicy()
	assert.True(t, resp.SSSRate.Equal(newRate))
	// Untouched fields keep their defaults.
	assert.True(t, resp.PhilHealthRate.Equal(defaults.PhilHealthRate))
	assert.True(t, resp.OvertimeMultiplier.Equal(defaults.OvertimeMultiplier))
}
