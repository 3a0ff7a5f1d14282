package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// SettingsRepository stores platform-wide settings documents.
type SettingsRepository interface {
	// GetFeatureFlags returns ErrNotFound until flags have been saved once.
	GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error)
	// ReplaceFeatureFlags overwrites the stored map wholesale.
	ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) error
}
