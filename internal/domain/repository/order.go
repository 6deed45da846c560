package repository

import (
	"context"
	"time"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status    model.OrderStatus
	From      *time.Time
	To        *time.Time
	Query     string
	Ascending bool
	Limit     int
	Offset    int
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	// UpdateStatus performs a guarded transition: the current status is read
	// under a row lock, the lifecycle edge validated, and the new status plus
	// its timestamp written in the same transaction.
	UpdateStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
	// AssignDriver sets the driver, forces status to assigned, and marks the
	// driver busy, all in one transaction. Allowed only from new or assigned.
	AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error)
}
