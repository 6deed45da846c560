package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// DriverUseCase manages the driver roster.
type DriverUseCase struct {
	drivers repository.DriverRepository
}

// NewDriverUseCase constructs DriverUseCase.
func NewDriverUseCase(drivers repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{drivers: drivers}
}

// Create registers a new driver, defaulting status to available.
func (u *DriverUseCase) Create(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	if status == "" {
		status = model.DriverStatusAvailable
	}
	if !model.ValidDriverStatus(status) {
		return nil, domainErrors.ErrValidation
	}
	return u.drivers.Create(ctx, name, status)
}

// Get fetches one driver by identifier.
func (u *DriverUseCase) Get(ctx context.Context, id int64) (*model.Driver, error) {
	return u.drivers.GetByID(ctx, id)
}

// List returns drivers, optionally filtered by status.
func (u *DriverUseCase) List(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	if status != "" && !model.ValidDriverStatus(status) {
		return nil, domainErrors.ErrValidation
	}
	return u.drivers.List(ctx, status)
}

// Update applies a partial update to a driver.
// Offlining a driver does not touch orders already assigned to them.
func (u *DriverUseCase) Update(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error) {
	if update.Name == nil && update.Status == nil {
		return nil, domainErrors.ErrValidation
	}
	if update.Status != nil && !model.ValidDriverStatus(*update.Status) {
		return nil, domainErrors.ErrValidation
	}
	return u.drivers.Update(ctx, id, update)
}

// Delete removes a driver; administrators only.
func (u *DriverUseCase) Delete(ctx context.Context, actor *model.User, id int64) error {
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return u.drivers.Delete(ctx, id)
}
