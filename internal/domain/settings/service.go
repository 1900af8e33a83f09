package settings

import "context"

type SettingsService interface {
	Get(ctx context.Context) (AccountSettingsResponse, error)
	Update(ctx context.Context, req UpdateAccountSettingsRequest) (AccountSettingsResponse, error)
}
