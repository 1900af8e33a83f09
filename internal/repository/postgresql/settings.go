package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/settings"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

const accountSettingsColumns = `
	id, company_name, default_currency, sender_name, sender_email, created_at, updated_at
`

func (r *settingsRepository) Get(ctx context.Context) (settings.AccountSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountSettingsColumns + ` FROM account_settings ORDER BY created_at LIMIT 1`

	var s settings.AccountSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.DefaultCurrency, &s.SenderName, &s.SenderEmail,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.AccountSettings{}, settings.ErrSettingsNotFound
		}
		return settings.AccountSettings{}, fmt.Errorf("failed to get account settings: %w", err)
	}

	return s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s settings.AccountSettings) (settings.AccountSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO account_settings (singleton, company_name, default_currency, sender_name, sender_email)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (singleton)
		DO UPDATE SET
			company_name = EXCLUDED.company_name,
			default_currency = EXCLUDED.default_currency,
			sender_name = EXCLUDED.sender_name,
			sender_email = EXCLUDED.sender_email,
			updated_at = NOW()
		RETURNING ` + accountSettingsColumns

	var saved settings.AccountSettings
	err := q.QueryRow(ctx, query, s.CompanyName, s.DefaultCurrency, s.SenderName, s.SenderEmail).Scan(
		&saved.ID, &saved.CompanyName, &saved.DefaultCurrency, &saved.SenderName, &saved.SenderEmail,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return settings.AccountSettings{}, fmt.Errorf("failed to upsert account settings: %w", err)
	}

	return saved, nil
}
