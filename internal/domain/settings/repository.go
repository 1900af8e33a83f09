package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (AccountSettings, error)
	Upsert(ctx context.Context, s AccountSettings) (AccountSettings, error)
}
