package repository

import (
	"context"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// CustomerUpdate carries optional customer fields to change.
type CustomerUpdate struct {
	Name      *string
	Addresses []model.CustomerAddress
}

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	Create(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id int64, update CustomerUpdate) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}
