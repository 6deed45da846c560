package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// SettingsUseCase manages the singleton platform settings.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get returns current settings, creating defaults on first read.
func (u *SettingsUseCase) Get(ctx context.Context) (*model.Settings, error) {
	return u.settings.Get(ctx)
}

// Update upserts the settings row with last-writer-wins semantics;
// administrators only.
func (u *SettingsUseCase) Update(ctx context.Context, actor *model.User, update repository.SettingsUpdate) (*model.Settings, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}
	return u.settings.Upsert(ctx, update)
}
