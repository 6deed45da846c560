package repository

import (
	"context"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// SettingsUpdate carries optional settings fields to change.
type SettingsUpdate struct {
	PlatformName *string
	ContactEmail *string
	SupportPhone *string
}

// SettingsRepository manages the singleton platform settings row.
type SettingsRepository interface {
	// Get returns current settings, creating the default row when absent.
	Get(ctx context.Context) (*model.Settings, error)
	// Upsert applies provided fields with last-writer-wins semantics.
	Upsert(ctx context.Context, update SettingsUpdate) (*model.Settings, error)
}
