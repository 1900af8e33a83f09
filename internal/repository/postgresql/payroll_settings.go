package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type payrollSettingsRepository struct {
	db *database.DB
}

func NewPayrollSettingsRepository(db *database.DB) payroll.SettingsRepository {
	return &payrollSettingsRepository{db: db}
}

const payrollSettingsColumns = `
	id, sss_rate, sss_cap, philhealth_rate, philhealth_cap, pagibig_rate, pagibig_cap,
	overtime_multiplier, standard_monthly_hours, standard_daily_hours,
	tax_brackets, custom_deductions_taxable, created_at, updated_at
`

func scanPayrollSettings(row pgx.Row) (payroll.Settings, error) {
	var s payroll.Settings
	err := row.Scan(
		&s.ID, &s.SSSRate, &s.SSSCap, &s.PhilHealthRate, &s.PhilHealthCap,
		&s.PagIbigRate, &s.PagIbigCap,
		&s.OvertimeMultiplier, &s.StandardMonthlyHours, &s.StandardDailyHours,
		&s.TaxBrackets, &s.CustomDeductionsTaxable, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *payrollSettingsRepository) Get(ctx context.Context) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollSettingsColumns + ` FROM payroll_settings ORDER BY created_at LIMIT 1`

	s, err := scanPayrollSettings(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Settings{}, payroll.ErrSettingsNotFound
		}
		return payroll.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollSettingsRepository) Upsert(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	// Single-row table guarded by a constant key.
	query := `
		INSERT INTO payroll_settings
			(singleton, sss_rate, sss_cap, philhealth_rate, philhealth_cap, pagibig_rate, pagibig_cap,
			 overtime_multiplier, standard_monthly_hours, standard_daily_hours,
			 tax_brackets, custom_deductions_taxable)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (singleton)
		DO UPDATE SET
			sss_rate = EXCLUDED.sss_rate,
			sss_cap = EXCLUDED.sss_cap,
			philhealth_rate = EXCLUDED.philhealth_rate,
			philhealth_cap = EXCLUDED.philhealth_cap,
			pagibig_rate = EXCLUDED.pagibig_rate,
			pagibig_cap = EXCLUDED.pagibig_cap,
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			standard_monthly_hours = EXCLUDED.standard_monthly_hours,
			standard_daily_hours = EXCLUDED.standard_daily_hours,
			tax_brackets = EXCLUDED.tax_brackets,
			custom_deductions_taxable = EXCLUDED.custom_deductions_taxable,
			updated_at = NOW()
		RETURNING ` + payrollSettingsColumns

	s, err := scanPayrollSettings(q.QueryRow(ctx, query,
		settings.SSSRate, settings.SSSCap,
		settings.PhilHealthRate, settings.PhilHealthCap,
		settings.PagIbigRate, settings.PagIbigCap,
		settings.OvertimeMultiplier, settings.StandardMonthlyHours, settings.StandardDailyHours,
		settings.TaxBrackets, settings.CustomDeductionsTaxable,
	))
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}
