package repository

import (
	"context"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// RestaurantUpdate carries optional restaurant fields to change.
type RestaurantUpdate struct {
	Name        *string
	Address     *string
	CuisineType *string
	Coordinates []float64
}

// RestaurantRepository describes persistence operations with restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Update(ctx context.Context, id int64, update RestaurantUpdate) (*model.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}
