package usecase

import (
	"context"
	"math"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// totalTolerance bounds the accepted difference between a client-submitted
// total and the server-side recomputation.
const totalTolerance = 0.01

// CreateOrderInput carries the fields accepted on order creation.
type CreateOrderInput struct {
	CustomerID          int64
	RestaurantID        int64
	DriverID            *int64
	Items               []model.OrderItem
	TotalAmount         float64
	Status              model.OrderStatus
	CustomerName        string
	RestaurantName      string
	DeliveryAddress     string
	DeliveryCoordinates []float64
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders      repository.OrderRepository
	customers   repository.CustomerRepository
	restaurants repository.RestaurantRepository
	drivers     repository.DriverRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, restaurants repository.RestaurantRepository, drivers repository.DriverRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, restaurants: restaurants, drivers: drivers}
}

// Create validates references and amounts, then persists a new order.
// The total is always recomputed from line items; a client-submitted total
// differing beyond the tolerance is rejected rather than trusted.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	if input.CustomerID == 0 || input.RestaurantID == 0 || len(input.Items) == 0 {
		return nil, domainErrors.ErrValidation
	}
	if input.Status != "" && input.Status != model.OrderStatusNew {
		return nil, domainErrors.ErrValidation
	}
	if len(input.DeliveryCoordinates) != 0 && len(input.DeliveryCoordinates) != 2 {
		return nil, domainErrors.ErrValidation
	}

	items := make([]model.OrderItem, len(input.Items))
	for i, item := range input.Items {
		if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
			return nil, domainErrors.ErrValidation
		}
		item.Subtotal = item.Price * float64(item.Quantity)
		items[i] = item
	}

	total := model.ItemsTotal(items)
	if total <= 0 {
		return nil, domainErrors.ErrValidation
	}
	if input.TotalAmount != 0 && math.Abs(input.TotalAmount-total) > totalTolerance {
		return nil, domainErrors.ErrValidation
	}

	customer, err := u.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurant, err := u.restaurants.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID:          input.CustomerID,
		RestaurantID:        input.RestaurantID,
		Items:               items,
		TotalAmount:         total,
		Status:              model.OrderStatusNew,
		CustomerName:        input.CustomerName,
		RestaurantName:      input.RestaurantName,
		DeliveryAddress:     input.DeliveryAddress,
		DeliveryCoordinates: input.DeliveryCoordinates,
	}
	if order.CustomerName == "" {
		order.CustomerName = customer.Name
	}
	if order.RestaurantName == "" {
		order.RestaurantName = restaurant.Name
	}

	if input.DriverID != nil {
		driver, err := u.drivers.GetByID(ctx, *input.DriverID)
		if err != nil {
			return nil, err
		}
		order.DriverID = input.DriverID
		order.DriverName = &driver.Name
		order.Status = model.OrderStatusAssigned
	}

	return u.orders.Create(ctx, order)
}

// Get fetches one order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders matching filter, newest first unless ascending requested.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.List(ctx, filter)
}

// UpdateStatus performs a lifecycle transition on the order.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	if !model.ValidStatus(target) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.UpdateStatus(ctx, orderID, target)
}

// AssignDriver attaches a driver to an order still accepting assignment.
func (u *OrderUseCase) AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error) {
	if driverID == 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.AssignDriver(ctx, orderID, driverID)
}
