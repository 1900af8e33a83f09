package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	txManager      postgresql.TxManager
	batchRepo      payroll.BatchRepository
	payrollRepo    payroll.PayrollRepository
	settingsRepo   payroll.SettingsRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	earningRepo    earning.EarningRepository
	deductionRepo  deduction.DeductionRepository
}

func NewPayrollService(
	txManager postgresql.TxManager,
	batchRepo payroll.BatchRepository,
	payrollRepo payroll.PayrollRepository,
	settingsRepo payroll.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	earningRepo earning.EarningRepository,
	deductionRepo deduction.DeductionRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txManager:      txManager,
		batchRepo:      batchRepo,
		payrollRepo:    payrollRepo,
		settingsRepo:   settingsRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		earningRepo:    earningRepo,
		deductionRepo:  deductionRepo,
	}
}

// ========== BATCHES ==========

func (s *PayrollServiceImpl) CreateBatch(ctx context.Context, req payroll.CreateBatchRequest) (payroll.CreateBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CreateBatchResponse{}, err
	}

	start, end, payDate := req.Period()
	batch := payroll.PayrollBatch{
		Name:        req.BatchName,
		PeriodStart: start,
		PeriodEnd:   end,
		PayDate:     payDate,
		Status:      payroll.BatchStatusDraft,
		EmployeeIDs: req.EmployeeIDs,
		Departments: req.Departments,
		SelectAll:   req.SelectAll,
	}

	// A new batch is processed immediately so the caller gets calculated
	// rows back in one round trip. Create and process share one transaction:
	// a batch that cannot be processed is rolled back, never persisted.
	var (
		batchResp payroll.BatchResponse
		summary   payroll.ProcessSummary
	)
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		created, txErr := s.batchRepo.Create(ctx, batch)
		if txErr != nil {
			return txErr
		}
		batchResp, summary, txErr = s.process(ctx, created.ID)
		return txErr
	})
	if err != nil {
		return payroll.CreateBatchResponse{}, err
	}

	return payroll.CreateBatchResponse{Batch: batchResp, Summary: summary}, nil
}

func (s *PayrollServiceImpl) GetBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	return toBatchResponse(batch), nil
}

func (s *PayrollServiceImpl) ListBatches(ctx context.Context, limit int) ([]payroll.BatchResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	batches, err := s.batchRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, toBatchResponse(b))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdateBatch(ctx context.Context, req payroll.UpdateBatchRequest) (payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	batch, err := s.batchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	if req.Status != nil {
		target := payroll.BatchStatus(*req.Status)
		if !batch.Status.CanTransition(target) {
			if batch.Status.Terminal() {
				return payroll.BatchResponse{}, payroll.ErrBatchTerminal
			}
			return payroll.BatchResponse{}, payroll.ErrInvalidStatusChange
		}
	}

	if err := s.batchRepo.Update(ctx, req); err != nil {
		return payroll.BatchResponse{}, err
	}

	updated, err := s.batchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	return toBatchResponse(updated), nil
}

// ProcessBatch recalculates every employee in the batch inside a single
// transaction. The batch row is locked first so concurrent runs serialize;
// rows are upserted by (batch, employee) so reprocessing is idempotent.
func (s *PayrollServiceImpl) ProcessBatch(ctx context.Context, id string) (payroll.BatchResponse, payroll.ProcessSummary, error) {
	var (
		resp    payroll.BatchResponse
		summary payroll.ProcessSummary
	)

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		resp, summary, txErr = s.process(ctx, id)
		return txErr
	})
	if err != nil {
		return payroll.BatchResponse{}, payroll.ProcessSummary{}, err
	}

	return resp, summary, nil
}

// process runs one processing pass. It expects an ambient transaction, so a
// failed run rolls back everything it touched, including a batch row created
// in the same transaction.
func (s *PayrollServiceImpl) process(ctx context.Context, id string) (payroll.BatchResponse, payroll.ProcessSummary, error) {
	var summary payroll.ProcessSummary

	policy, err := s.loadPolicy(ctx)
	if err != nil {
		return payroll.BatchResponse{}, summary, err
	}

	batch, err := s.batchRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return payroll.BatchResponse{}, summary, err
	}

	if batch.Status.Terminal() {
		return payroll.BatchResponse{}, summary, payroll.ErrBatchTerminal
	}

	if err = s.batchRepo.UpdateStatus(ctx, batch.ID, payroll.BatchStatusProcessing); err != nil {
		return payroll.BatchResponse{}, summary, err
	}

	employees, err := s.resolveEmployees(ctx, batch)
	if err != nil {
		return payroll.BatchResponse{}, summary, err
	}
	if len(employees) == 0 {
		return payroll.BatchResponse{}, summary, payroll.ErrEmptyEmployeeSelection
	}

	totals := payroll.PayrollBatch{ID: batch.ID,
		TotalGrossPay:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}

	for _, emp := range employees {
		record, calcErr := s.calculateEmployee(ctx, emp, batch, policy)
		if calcErr != nil {
			// A broken employee must not sink the whole run. Count it
			// and move on; persistence errors below still abort.
			summary.Failed++
			continue
		}

		if _, err = s.payrollRepo.Upsert(ctx, record); err != nil {
			return payroll.BatchResponse{}, summary, fmt.Errorf("failed to persist payroll for employee %s: %w", emp.ID, err)
		}

		summary.Successful++
		totals.TotalEmployees++
		totals.TotalGrossPay = totals.TotalGrossPay.Add(record.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(record.TotalDeductions)
		totals.TotalNetPay = totals.TotalNetPay.Add(record.NetPay)
	}

	if err = s.batchRepo.UpdateTotals(ctx, totals); err != nil {
		return payroll.BatchResponse{}, summary, err
	}
	if err = s.batchRepo.UpdateStatus(ctx, batch.ID, payroll.BatchStatusCalculated); err != nil {
		return payroll.BatchResponse{}, summary, err
	}

	batch, err = s.batchRepo.GetByID(ctx, batch.ID)
	if err != nil {
		return payroll.BatchResponse{}, summary, err
	}

	return toBatchResponse(batch), summary, nil
}

func (s *PayrollServiceImpl) DeleteBatch(ctx context.Context, id string) error {
	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		batch, err := s.batchRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if batch.Status == payroll.BatchStatusPaid {
			return payroll.ErrBatchPaid
		}

		if err := s.payrollRepo.DeleteByBatchID(ctx, batch.ID); err != nil {
			return err
		}
		return s.batchRepo.Delete(ctx, batch.ID)
	})
}

// resolveEmployees expands the batch selector into concrete employees.
func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, batch payroll.PayrollBatch) ([]employee.Employee, error) {
	switch {
	case len(batch.EmployeeIDs) > 0:
		return s.employeeRepo.GetByIDs(ctx, batch.EmployeeIDs)
	case len(batch.Departments) > 0:
		return s.employeeRepo.GetActiveByDepartments(ctx, batch.Departments)
	default:
		return s.employeeRepo.GetActive(ctx)
	}
}

func (s *PayrollServiceImpl) calculateEmployee(ctx context.Context, emp employee.Employee, batch payroll.PayrollBatch, policy payroll.Policy) (payroll.Payroll, error) {
	if emp.BaseSalary.IsNegative() {
		return payroll.Payroll{}, fmt.Errorf("employee %s has a negative base salary", emp.ID)
	}

	records, err := s.attendanceRepo.GetByEmployeePeriod(ctx, emp.ID, batch.PeriodStart, batch.PeriodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}
	earnings, err := s.earningRepo.GetActiveInPeriod(ctx, emp.ID, batch.PeriodStart, batch.PeriodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}
	deductions, err := s.deductionRepo.GetActiveInPeriod(ctx, emp.ID, batch.PeriodStart, batch.PeriodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}

	record := Calculate(CalculationInput{
		Employee:    emp,
		PeriodStart: batch.PeriodStart,
		PeriodEnd:   batch.PeriodEnd,
		Attendance:  records,
		Earnings:    earnings,
		Deductions:  deductions,
		Policy:      policy,
	})
	record.BatchID = batch.ID

	return record, nil
}

// ========== PAYROLL ROWS ==========

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toPayrollResponse(r))
	}
	return responses, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	policy, err := s.loadPolicy(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}
	return toSettingsResponse(policy), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.SettingsResponse{}, err
		}
		current = defaultSettings()
	}

	if req.SSSRate != nil {
		current.SSSRate = *req.SSSRate
	}
	if req.SSSCap != nil {
		current.SSSCap = *req.SSSCap
	}
	if req.PhilHealthRate != nil {
		current.PhilHealthRate = *req.PhilHealthRate
	}
	if req.PhilHealthCap != nil {
		current.PhilHealthCap = *req.PhilHealthCap
	}
	if req.PagIbigRate != nil {
		current.PagIbigRate = *req.PagIbigRate
	}
	if req.PagIbigCap != nil {
		current.PagIbigCap = *req.PagIbigCap
	}
	if req.OvertimeMultiplier != nil {
		current.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.StandardMonthlyHours != nil {
		current.StandardMonthlyHours = *req.StandardMonthlyHours
	}
	if req.StandardDailyHours != nil {
		current.StandardDailyHours = *req.StandardDailyHours
	}
	if len(req.TaxBrackets) > 0 {
		current.TaxBrackets = req.TaxBrackets
	}
	if req.CustomDeductionsTaxable != nil {
		current.CustomDeductionsTaxable = *req.CustomDeductionsTaxable
	}

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}
	return toSettingsResponse(saved.Policy()), nil
}

// loadPolicy returns the stored policy, or the statutory defaults when no
// settings row has been saved yet.
func (s *PayrollServiceImpl) loadPolicy(ctx context.Context) (payroll.Policy, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.DefaultPolicy(), nil
		}
		return payroll.Policy{}, err
	}
	return stored.Policy(), nil
}

func defaultSettings() payroll.Settings {
	p := payroll.DefaultPolicy()
	return payroll.Settings{
		SSSRate:                 p.SSSRate,
		SSSCap:                  p.SSSCap,
		PhilHealthRate:          p.PhilHealthRate,
		PhilHealthCap:           p.PhilHealthCap,
		PagIbigRate:             p.PagIbigRate,
		PagIbigCap:              p.PagIbigCap,
		OvertimeMultiplier:      p.OvertimeMultiplier,
		StandardMonthlyHours:    p.StandardMonthlyHours,
		StandardDailyHours:      p.StandardDailyHours,
		TaxBrackets:             p.TaxBrackets,
		CustomDeductionsTaxable: p.CustomDeductionsTaxable,
	}
}

// ========== MAPPERS ==========

func toBatchResponse(b payroll.PayrollBatch) payroll.BatchResponse {
	resp := payroll.BatchResponse{
		ID:              b.ID,
		Name:            b.Name,
		PeriodStart:     b.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       b.PeriodEnd.Format(time.DateOnly),
		Status:          string(b.Status),
		TotalEmployees:  b.TotalEmployees,
		TotalGrossPay:   b.TotalGrossPay,
		TotalDeductions: b.TotalDeductions,
		TotalNetPay:     b.TotalNetPay,
	}
	if b.PayDate != nil {
		d := b.PayDate.Format(time.DateOnly)
		resp.PayDate = &d
	}
	return resp
}

func toPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:              p.ID,
		BatchID:         p.BatchID,
		EmployeeID:      p.EmployeeID,
		PeriodStart:     p.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       p.PeriodEnd.Format(time.DateOnly),
		WorkDays:        p.WorkDays,
		RegularHours:    p.RegularHours,
		OvertimeHours:   p.OvertimeHours,
		BaseSalary:      p.BaseSalary,
		RegularPay:      p.RegularPay,
		OvertimePay:     p.OvertimePay,
		TotalEarnings:   p.TotalEarnings,
		GovernmentTotal: p.GovernmentTotal,
		CustomTotal:     p.CustomTotal,
		GrossPay:        p.GrossPay,
		TaxableIncome:   p.TaxableIncome,
		WithholdingTax:  p.WithholdingTax,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
		Status:          string(p.Status),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	return resp
}

func toSettingsResponse(p payroll.Policy) payroll.SettingsResponse {
	return payroll.SettingsResponse{
		SSSRate:                 p.SSSRate,
		SSSCap:                  p.SSSCap,
		PhilHealthRate:          p.PhilHealthRate,
		PhilHealthCap:           p.PhilHealthCap,
		PagIbigRate:             p.PagIbigRate,
		PagIbigCap:              p.PagIbigCap,
		OvertimeMultiplier:      p.OvertimeMultiplier,
		StandardMonthlyHours:    p.StandardMonthlyHours,
		StandardDailyHours:      p.StandardDailyHours,
		TaxBrackets:             p.TaxBrackets,
		CustomDeductionsTaxable: p.CustomDeductionsTaxable,
	}
}
