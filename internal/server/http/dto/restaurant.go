package dto

import "time"

// CreateRestaurantRequest describes restaurant creation payload.
type CreateRestaurantRequest struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	CuisineType *string   `json:"cuisine_type"`
	Coordinates []float64 `json:"coordinates"`
}

// UpdateRestaurantRequest carries optional restaurant fields to change.
type UpdateRestaurantRequest struct {
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	CuisineType *string   `json:"cuisine_type"`
	Coordinates []float64 `json:"coordinates"`
}

// RestaurantResponse describes a restaurant record.
type RestaurantResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	CuisineType *string   `json:"cuisine_type"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
