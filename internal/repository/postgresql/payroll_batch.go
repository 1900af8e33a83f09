package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type batchRepository struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) payroll.BatchRepository {
	return &batchRepository{db: db}
}

const batchColumns = `
	id, name, period_start, period_end, pay_date, status,
	employee_ids, departments, select_all,
	total_employees, total_gross_pay, total_deductions, total_net_pay,
	created_at, updated_at
`

func scanBatch(row pgx.Row) (payroll.PayrollBatch, error) {
	var b payroll.PayrollBatch
	err := row.Scan(
		&b.ID, &b.Name, &b.PeriodStart, &b.PeriodEnd, &b.PayDate, &b.Status,
		&b.EmployeeIDs, &b.Departments, &b.SelectAll,
		&b.TotalEmployees, &b.TotalGrossPay, &b.TotalDeductions, &b.TotalNetPay,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *batchRepository) Create(ctx context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches
			(name, period_start, period_end, pay_date, status, employee_ids, departments, select_all)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + batchColumns

	b, err := scanBatch(q.QueryRow(ctx, query,
		batch.Name, batch.PeriodStart, batch.PeriodEnd, batch.PayDate, batch.Status,
		batch.EmployeeIDs, batch.Departments, batch.SelectAll,
	))
	if err != nil {
		return payroll.PayrollBatch{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}

	return b, nil
}

func (r *batchRepository) GetByID(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	return r.getByID(ctx, id, false)
}

func (r *batchRepository) GetByIDForUpdate(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	return r.getByID(ctx, id, true)
}

func (r *batchRepository) getByID(ctx context.Context, id string, forUpdate bool) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE id = $1`
	if forUpdate {
		// NOWAIT so a batch already being processed surfaces as a 409
		// instead of the second request queueing behind the first.
		query += ` FOR UPDATE NOWAIT`
	}

	b, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		if isLockNotAvailable(err) {
			return payroll.PayrollBatch{}, payroll.ErrBatchLocked
		}
		return payroll.PayrollBatch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return b, nil
}

// isLockNotAvailable reports whether err is Postgres 55P03, which is what
// FOR UPDATE NOWAIT raises when another transaction holds the row lock.
func isLockNotAvailable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "55P03")
}

func (r *batchRepository) List(ctx context.Context, limit int) ([]payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches ORDER BY period_start DESC, created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, b)
	}

	return batches, nil
}

func (r *batchRepository) Update(ctx context.Context, req payroll.UpdateBatchRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.BatchName != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.BatchName)
		argIdx++
	}
	if req.PayDate != nil {
		setParts = append(setParts, fmt.Sprintf("pay_date = $%d::date", argIdx))
		args = append(args, *req.PayDate)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE payroll_batches
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotFound
		}
		return fmt.Errorf("failed to update payroll batch: %w", err)
	}

	return nil
}

func (r *batchRepository) UpdateStatus(ctx context.Context, id string, status payroll.BatchStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotFound
		}
		return fmt.Errorf("failed to update batch status: %w", err)
	}

	return nil
}

func (r *batchRepository) UpdateTotals(ctx context.Context, batch payroll.PayrollBatch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches
		SET total_employees = $2, total_gross_pay = $3, total_deductions = $4, total_net_pay = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		batch.ID, batch.TotalEmployees, batch.TotalGrossPay, batch.TotalDeductions, batch.TotalNetPay,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotFound
		}
		return fmt.Errorf("failed to update batch totals: %w", err)
	}

	return nil
}

func (r *batchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_batches WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBatchNotFound
		}
		return fmt.Errorf("failed to delete payroll batch: %w", err)
	}

	return nil
}
