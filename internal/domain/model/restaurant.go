package model

import "time"

// Restaurant represents a partner restaurant.
type Restaurant struct {
	ID          int64
	Name        string
	Address     string
	CuisineType *string
	Coordinates []float64
	CreatedAt   time.Time
}
