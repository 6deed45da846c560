package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// CustomerUseCase manages ordering customers.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create registers a customer with optional saved addresses.
func (u *CustomerUseCase) Create(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.customers.Create(ctx, name, addresses)
}

// Get fetches one customer by identifier.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// List returns all customers.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Update applies a partial update to a customer.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error) {
	if update.Name == nil && update.Addresses == nil {
		return nil, domainErrors.ErrValidation
	}
	return u.customers.Update(ctx, id, update)
}

// Delete removes a customer; administrators only.
func (u *CustomerUseCase) Delete(ctx context.Context, actor *model.User, id int64) error {
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return u.customers.Delete(ctx, id)
}
