package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/expense"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `
	id, category, description, amount, expense_date, status,
	submitted_by, reviewed_by, reviewed_at, reimbursement_id, created_at, updated_at
`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID, &e.Category, &e.Description, &e.Amount, &e.ExpenseDate, &e.Status,
		&e.SubmittedBy, &e.ReviewedBy, &e.ReviewedAt, &e.ReimbursementID, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *expenseRepository) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (category, description, amount, expense_date, status, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + expenseColumns

	e, err := scanExpense(q.QueryRow(ctx, query,
		newExpense.Category, newExpense.Description, newExpense.Amount,
		newExpense.ExpenseDate, newExpense.Status, newExpense.SubmittedBy,
	))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) GetByIDs(ctx context.Context, ids []string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ANY($1) ORDER BY expense_date`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (r *expenseRepository) List(ctx context.Context, filter expense.ExpenseFilter) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM expenses WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM expenses
		WHERE %s
		ORDER BY expense_date DESC
		LIMIT $%d OFFSET $%d
	`, expenseColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, totalCount, nil
}

func (r *expenseRepository) UpdateReview(ctx context.Context, id string, status expense.Status, reviewedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status, reviewedBy).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to review expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) SetReimbursement(ctx context.Context, expenseIDs []string, reimbursementID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET reimbursement_id = $2, updated_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := q.Exec(ctx, query, expenseIDs, nullableID(reimbursementID)); err != nil {
		return fmt.Errorf("failed to attach expenses to reimbursement: %w", err)
	}

	return nil
}

// nullableID maps the empty string to NULL so detaching reuses the same query.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) expense.ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

const reimbursementColumns = `
	r.id, r.customer_id, r.description, r.total_amount, r.status, r.expense_ids,
	r.created_at, r.updated_at
`

func scanReimbursement(row pgx.Row) (expense.Reimbursement, error) {
	var rb expense.Reimbursement
	err := row.Scan(
		&rb.ID, &rb.CustomerID, &rb.Description, &rb.TotalAmount, &rb.Status, &rb.ExpenseIDs,
		&rb.CreatedAt, &rb.UpdatedAt,
	)
	return rb, err
}

func (r *reimbursementRepository) Create(ctx context.Context, newReimbursement expense.Reimbursement) (expense.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reimbursements (customer_id, description, total_amount, status, expense_ids)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + strings.ReplaceAll(reimbursementColumns, "r.", "")

	rb, err := scanReimbursement(q.QueryRow(ctx, query,
		newReimbursement.CustomerID, newReimbursement.Description,
		newReimbursement.TotalAmount, newReimbursement.Status, newReimbursement.ExpenseIDs,
	))
	if err != nil {
		return expense.Reimbursement{}, fmt.Errorf("failed to create reimbursement: %w", err)
	}

	return rb, nil
}

func (r *reimbursementRepository) GetByID(ctx context.Context, id string) (expense.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reimbursementColumns + `, c.name
		FROM reimbursements r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.id = $1
	`

	var rb expense.Reimbursement
	err := q.QueryRow(ctx, query, id).Scan(
		&rb.ID, &rb.CustomerID, &rb.Description, &rb.TotalAmount, &rb.Status, &rb.ExpenseIDs,
		&rb.CreatedAt, &rb.UpdatedAt, &rb.CustomerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Reimbursement{}, expense.ErrReimbursementNotFound
		}
		return expense.Reimbursement{}, fmt.Errorf("failed to get reimbursement: %w", err)
	}

	return rb, nil
}

func (r *reimbursementRepository) List(ctx context.Context) ([]expense.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reimbursementColumns + `, c.name
		FROM reimbursements r
		JOIN customers c ON c.id = r.customer_id
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements: %w", err)
	}
	defer rows.Close()

	var reimbursements []expense.Reimbursement
	for rows.Next() {
		var rb expense.Reimbursement
		err := rows.Scan(
			&rb.ID, &rb.CustomerID, &rb.Description, &rb.TotalAmount, &rb.Status, &rb.ExpenseIDs,
			&rb.CreatedAt, &rb.UpdatedAt, &rb.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement: %w", err)
		}
		reimbursements = append(reimbursements, rb)
	}

	return reimbursements, nil
}

func (r *reimbursementRepository) UpdateStatus(ctx context.Context, id string, status expense.ReimbursementStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reimbursements
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrReimbursementNotFound
		}
		return fmt.Errorf("failed to update reimbursement status: %w", err)
	}

	return nil
}

func (r *reimbursementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM reimbursements WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrReimbursementNotFound
		}
		return fmt.Errorf("failed to delete reimbursement: %w", err)
	}

	return nil
}
