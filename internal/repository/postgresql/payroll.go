package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.batch_id, p.employee_id, p.period_start, p.period_end,
	p.work_days, p.regular_hours, p.overtime_hours,
	p.base_salary, p.regular_pay, p.overtime_pay, p.total_earnings,
	p.government_total, p.custom_total, p.gross_pay,
	p.taxable_income, p.withholding_tax, p.total_deductions, p.net_pay,
	p.status, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.BatchID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.WorkDays, &p.RegularHours, &p.OvertimeHours,
		&p.BaseSalary, &p.RegularPay, &p.OvertimePay, &p.TotalEarnings,
		&p.GovernmentTotal, &p.CustomTotal, &p.GrossPay,
		&p.TaxableIncome, &p.WithholdingTax, &p.TotalDeductions, &p.NetPay,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanPayrollWithEmployee(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.BatchID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.WorkDays, &p.RegularHours, &p.OvertimeHours,
		&p.BaseSalary, &p.RegularPay, &p.OvertimePay, &p.TotalEarnings,
		&p.GovernmentTotal, &p.CustomTotal, &p.GrossPay,
		&p.TaxableIncome, &p.WithholdingTax, &p.TotalDeductions, &p.NetPay,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	return p, err
}

func (r *payrollRepository) Upsert(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls AS p
			(batch_id, employee_id, period_start, period_end,
			 work_days, regular_hours, overtime_hours,
			 base_salary, regular_pay, overtime_pay, total_earnings,
			 government_total, custom_total, gross_pay,
			 taxable_income, withholding_tax, total_deductions, net_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (batch_id, employee_id)
		DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			work_days = EXCLUDED.work_days,
			regular_hours = EXCLUDED.regular_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			base_salary = EXCLUDED.base_salary,
			regular_pay = EXCLUDED.regular_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			total_earnings = EXCLUDED.total_earnings,
			government_total = EXCLUDED.government_total,
			custom_total = EXCLUDED.custom_total,
			gross_pay = EXCLUDED.gross_pay,
			taxable_income = EXCLUDED.taxable_income,
			withholding_tax = EXCLUDED.withholding_tax,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + payrollColumns

	p, err := scanPayroll(q.QueryRow(ctx, query,
		record.BatchID, record.EmployeeID, record.PeriodStart, record.PeriodEnd,
		record.WorkDays, record.RegularHours, record.OvertimeHours,
		record.BaseSalary, record.RegularPay, record.OvertimePay, record.TotalEarnings,
		record.GovernmentTotal, record.CustomTotal, record.GrossPay,
		record.TaxableIncome, record.WithholdingTax, record.TotalDeductions, record.NetPay,
		record.Status,
	))
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayrollWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByBatchID(ctx context.Context, batchID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.batch_id = $1
		ORDER BY e.full_name
	`

	return r.queryPayrolls(ctx, q, query, batchID)
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != nil {
		where = append(where, fmt.Sprintf("p.period_start >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where = append(where, fmt.Sprintf("p.period_end <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BatchID != nil {
		where = append(where, fmt.Sprintf("p.batch_id = $%d", argIdx))
		args = append(args, *filter.BatchID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.period_start DESC, e.full_name
		LIMIT $%d
	`, payrollColumns, strings.Join(where, " AND "), argIdx)
	args = append(args, filter.Limit)

	return r.queryPayrolls(ctx, q, query, args...)
}

func (r *payrollRepository) DeleteByBatchID(ctx context.Context, batchID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payrolls WHERE batch_id = $1`, batchID); err != nil {
		return fmt.Errorf("failed to delete payrolls for batch: %w", err)
	}

	return nil
}

func (r *payrollRepository) queryPayrolls(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.Payroll, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayrollWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, nil
}
