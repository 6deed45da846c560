package repository

import (
	"context"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// DriverUpdate carries optional driver fields to change.
type DriverUpdate struct {
	Name   *string
	Status *model.DriverStatus
}

// DriverRepository describes persistence operations with drivers.
type DriverRepository interface {
	Create(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error)
	GetByID(ctx context.Context, id int64) (*model.Driver, error)
	List(ctx context.Context, status model.DriverStatus) ([]model.Driver, error)
	Update(ctx context.Context, id int64, update DriverUpdate) (*model.Driver, error)
	Delete(ctx context.Context, id int64) error
}
