package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// RestaurantUseCase manages partner restaurants.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants}
}

// Create registers a restaurant. Duplicate name+address pairs are rejected.
func (u *RestaurantUseCase) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	restaurant.Name = strings.TrimSpace(restaurant.Name)
	restaurant.Address = strings.TrimSpace(restaurant.Address)
	if restaurant.Name == "" || restaurant.Address == "" {
		return nil, domainErrors.ErrValidation
	}
	if len(restaurant.Coordinates) != 0 && len(restaurant.Coordinates) != 2 {
		return nil, domainErrors.ErrValidation
	}
	return u.restaurants.Create(ctx, restaurant)
}

// Get fetches one restaurant by identifier.
func (u *RestaurantUseCase) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	return u.restaurants.GetByID(ctx, id)
}

// List returns all restaurants.
func (u *RestaurantUseCase) List(ctx context.Context) ([]model.Restaurant, error) {
	return u.restaurants.List(ctx)
}

// Update applies a partial update to a restaurant.
func (u *RestaurantUseCase) Update(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error) {
	if update.Name == nil && update.Address == nil && update.CuisineType == nil && update.Coordinates == nil {
		return nil, domainErrors.ErrValidation
	}
	if len(update.Coordinates) != 0 && len(update.Coordinates) != 2 {
		return nil, domainErrors.ErrValidation
	}
	return u.restaurants.Update(ctx, id, update)
}

// Delete removes a restaurant; administrators only.
func (u *RestaurantUseCase) Delete(ctx context.Context, actor *model.User, id int64) error {
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return u.restaurants.Delete(ctx, id)
}
