package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

const deductionColumns = `
	id, employee_id, name, kind, value, frequency, effective_date, end_date, is_active, created_at, updated_at
`

func scanDeduction(row pgx.Row) (deduction.Deduction, error) {
	var d deduction.Deduction
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Name, &d.Kind, &d.Value, &d.Frequency,
		&d.EffectiveDate, &d.EndDate, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *deductionRepository) Create(ctx context.Context, newDeduction deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (employee_id, name, kind, value, frequency, effective_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + deductionColumns

	d, err := scanDeduction(q.QueryRow(ctx, query,
		newDeduction.EmployeeID, newDeduction.Name, newDeduction.Kind, newDeduction.Value,
		newDeduction.Frequency, newDeduction.EffectiveDate, newDeduction.EndDate, newDeduction.IsActive,
	))
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) GetByID(ctx context.Context, id string) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE id = $1`

	d, err := scanDeduction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE employee_id = $1 ORDER BY effective_date DESC`

	return r.queryDeductions(ctx, q, query, employeeID)
}

func (r *deductionRepository) Update(ctx context.Context, req deduction.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Value != nil {
		setParts = append(setParts, fmt.Sprintf("value = $%d", argIdx))
		args = append(args, *req.Value)
		argIdx++
	}
	if req.EndDate != nil {
		setParts = append(setParts, fmt.Sprintf("end_date = $%d::date", argIdx))
		args = append(args, *req.EndDate)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE deductions
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to update deduction: %w", err)
	}

	return nil
}

func (r *deductionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM deductions WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to delete deduction: %w", err)
	}

	return nil
}

func (r *deductionRepository) GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions
		WHERE employee_id = $1
			AND is_active = TRUE
			AND effective_date <= $3
			AND (end_date IS NULL OR end_date >= $2)
		ORDER BY effective_date
	`

	return r.queryDeductions(ctx, q, query, employeeID, periodStart, periodEnd)
}

func (r *deductionRepository) queryDeductions(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]deduction.Deduction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, nil
}
