package storage

import (
	"context"

	"github.com/iudanet/snipkeeper/internal/models"
)

// SettingsStorage хранит пользовательские настройки и список источников
type SettingsStorage interface {
	// LoadSettings returns stored settings.
	// Returns ErrSettingsNotFound if nothing was saved yet.
	LoadSettings(ctx context.Context) (*models.Settings, error)

	// SaveSettings replaces stored settings.
	SaveSettings(ctx context.Context, settings *models.Settings) error
}
