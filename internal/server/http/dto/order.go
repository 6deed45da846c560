package dto

import "time"

// OrderItemPayload is one line item of an order.
type OrderItemPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal,omitempty"`
}

// CreateOrderRequest describes order creation payload.
type CreateOrderRequest struct {
	CustomerID          int64              `json:"customer_id"`
	RestaurantID        int64              `json:"restaurant_id"`
	DriverID            *int64             `json:"driver_id"`
	Items               []OrderItemPayload `json:"items"`
	TotalAmount         float64            `json:"total_amount"`
	Status              string             `json:"status"`
	CustomerName        string             `json:"customer_name"`
	RestaurantName      string             `json:"restaurant_name"`
	DeliveryAddress     string             `json:"delivery_address"`
	DeliveryCoordinates []float64          `json:"delivery_coordinates"`
}

// StatusUpdateRequest carries the target lifecycle status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// AssignDriverRequest carries the driver to attach to an order.
// The driver name is resolved server-side; a submitted name is ignored.
type AssignDriverRequest struct {
	DriverID   int64  `json:"driver_id"`
	DriverName string `json:"driver_name"`
}

// OrderResponse describes an order record.
type OrderResponse struct {
	ID                  int64              `json:"id"`
	CustomerID          int64              `json:"customer_id"`
	RestaurantID        int64              `json:"restaurant_id"`
	DriverID            *int64             `json:"driver_id"`
	Items               []OrderItemPayload `json:"items"`
	TotalAmount         float64            `json:"total_amount"`
	Status              string             `json:"status"`
	CustomerName        string             `json:"customer_name"`
	RestaurantName      string             `json:"restaurant_name"`
	DriverName          *string            `json:"driver_name"`
	DeliveryAddress     string             `json:"delivery_address"`
	DeliveryCoordinates []float64          `json:"delivery_coordinates,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	ConfirmedAt         *time.Time         `json:"confirmed_at"`
	InTransitAt         *time.Time         `json:"in_transit_at"`
	DeliveredAt         *time.Time         `json:"delivered_at"`
	CancelledAt         *time.Time         `json:"cancelled_at"`
}
