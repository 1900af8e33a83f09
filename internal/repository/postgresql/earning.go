package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type earningRepository struct {
	db *database.DB
}

func NewEarningRepository(db *database.DB) earning.EarningRepository {
	return &earningRepository{db: db}
}

const earningColumns = `
	id, employee_id, name, amount, frequency, effective_date, end_date, is_active, created_at, updated_at
`

func scanEarning(row pgx.Row) (earning.Earning, error) {
	var e earning.Earning
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.Amount, &e.Frequency,
		&e.EffectiveDate, &e.EndDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *earningRepository) Create(ctx context.Context, newEarning earning.Earning) (earning.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO earnings (employee_id, name, amount, frequency, effective_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + earningColumns

	e, err := scanEarning(q.QueryRow(ctx, query,
		newEarning.EmployeeID, newEarning.Name, newEarning.Amount, newEarning.Frequency,
		newEarning.EffectiveDate, newEarning.EndDate, newEarning.IsActive,
	))
	if err != nil {
		return earning.Earning{}, fmt.Errorf("failed to create earning: %w", err)
	}

	return e, nil
}

func (r *earningRepository) GetByID(ctx context.Context, id string) (earning.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + earningColumns + ` FROM earnings WHERE id = $1`

	e, err := scanEarning(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return earning.Earning{}, earning.ErrEarningNotFound
		}
		return earning.Earning{}, fmt.Errorf("failed to get earning: %w", err)
	}

	return e, nil
}

func (r *earningRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]earning.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + earningColumns + ` FROM earnings WHERE employee_id = $1 ORDER BY effective_date DESC`

	return r.queryEarnings(ctx, q, query, employeeID)
}

func (r *earningRepository) Update(ctx context.Context, req earning.UpdateEarningRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
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
		UPDATE earnings
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return earning.ErrEarningNotFound
		}
		return fmt.Errorf("failed to update earning: %w", err)
	}

	return nil
}

func (r *earningRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM earnings WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return earning.ErrEarningNotFound
		}
		return fmt.Errorf("failed to delete earning: %w", err)
	}

	return nil
}

func (r *earningRepository) GetActiveInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]earning.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + earningColumns + `
		FROM earnings
		WHERE employee_id = $1
			AND is_active = TRUE
			AND effective_date <= $3
			AND (end_date IS NULL OR end_date >= $2)
		ORDER BY effective_date
	`

	return r.queryEarnings(ctx, q, query, employeeID, periodStart, periodEnd)
}

func (r *earningRepository) queryEarnings(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]earning.Earning, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query earnings: %w", err)
	}
	defer rows.Close()

	var earnings []earning.Earning
	for rows.Next() {
		e, err := scanEarning(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan earning: %w", err)
		}
		earnings = append(earnings, e)
	}

	return earnings, nil
}
