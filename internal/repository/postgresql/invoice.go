package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/invoice"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `
	i.id, i.customer_id, i.number, i.issue_date, i.due_date, i.items,
	i.subtotal, i.tax_rate, i.tax_amount, i.total, i.status, i.notes,
	i.created_at, i.updated_at
`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Number, &inv.IssueDate, &inv.DueDate, &inv.Items,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func scanInvoiceWithCustomer(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Number, &inv.IssueDate, &inv.DueDate, &inv.Items,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
		&inv.CustomerName, &inv.CustomerEmail,
	)
	return inv, err
}

func (r *invoiceRepository) Create(ctx context.Context, newInvoice invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices
			(customer_id, number, issue_date, due_date, items,
			 subtotal, tax_rate, tax_amount, total, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + strings.ReplaceAll(invoiceColumns, "i.", "")

	inv, err := scanInvoice(q.QueryRow(ctx, query,
		newInvoice.CustomerID, newInvoice.Number, newInvoice.IssueDate, newInvoice.DueDate,
		newInvoice.Items, newInvoice.Subtotal, newInvoice.TaxRate, newInvoice.TaxAmount,
		newInvoice.Total, newInvoice.Status, newInvoice.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_invoices_number") {
			return invoice.Invoice{}, invoice.ErrInvoiceNumberExists
		}
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1
	`

	inv, err := scanInvoiceWithCustomer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter invoice.InvoiceFilter) ([]invoice.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerID != nil {
		where = append(where, fmt.Sprintf("i.customer_id = $%d", argIdx))
		args = append(args, *filter.CustomerID)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("i.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM invoices i WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE %s
		ORDER BY i.issue_date DESC, i.number DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoiceWithCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, totalCount, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv invoice.Invoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET due_date = $2, items = $3, subtotal = $4, tax_rate = $5, tax_amount = $6,
			total = $7, status = $8, notes = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		inv.ID, inv.DueDate, inv.Items, inv.Subtotal, inv.TaxRate, inv.TaxAmount,
		inv.Total, inv.Status, inv.Notes,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status invoice.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM invoices WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}
