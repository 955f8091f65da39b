package ports

import (
	"context"

	"github.com/bnema/vcalc/internal/domain"
)

// SettingsRepository loads and stores the persisted settings blob. Load
// returns domain.DefaultSettings when nothing has been saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
