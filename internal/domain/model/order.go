package model

import "time"

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusInTransit OrderStatus = "in-transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// transitions lists reachable target statuses per current status.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:       {OrderStatusAssigned, OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusAssigned:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusInTransit, OrderStatusCancelled},
	OrderStatusInTransit: {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether (from, to) is an edge of the lifecycle graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanAssignDriver reports whether a driver may still be attached to an order.
func CanAssignDriver(status OrderStatus) bool {
	return status == OrderStatusNew || status == OrderStatusAssigned
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal,omitempty"`
}

// ItemsTotal computes the order total as the sum of line subtotals.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Order describes a customer purchase tracked from creation to delivery.
type Order struct {
	ID                  int64
	CustomerID          int64
	RestaurantID        int64
	DriverID            *int64
	Items               []OrderItem
	TotalAmount         float64
	Status              OrderStatus
	CustomerName        string
	RestaurantName      string
	DriverName          *string
	DeliveryAddress     string
	DeliveryCoordinates []float64
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
}
