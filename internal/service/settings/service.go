package settings

import (
	"context"
	"errors"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.AccountSettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return toResponse(defaultSettings()), nil
		}
		return settings.AccountSettingsResponse{}, err
	}
	return toResponse(current), nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateAccountSettingsRequest) (settings.AccountSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.AccountSettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.AccountSettingsResponse{}, err
		}
		current = defaultSettings()
	}

	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}
	if req.DefaultCurrency != nil {
		current.DefaultCurrency = *req.DefaultCurrency
	}
	if req.SenderName != nil {
		current.SenderName = *req.SenderName
	}
	if req.SenderEmail != nil {
		current.SenderEmail = *req.SenderEmail
	}

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return settings.AccountSettingsResponse{}, err
	}
	return toResponse(saved), nil
}

func defaultSettings() settings.AccountSettings {
	return settings.AccountSettings{
		CompanyName:     "My Company",
		DefaultCurrency: "PHP",
		SenderName:      "Payroll",
	}
}

func toResponse(s settings.AccountSettings) settings.AccountSettingsResponse {
	return settings.AccountSettingsResponse{
		CompanyName:     s.CompanyName,
		DefaultCurrency: s.DefaultCurrency,
		SenderName:      s.SenderName,
		SenderEmail:     s.SenderEmail,
	}
}
