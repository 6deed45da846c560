package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
	"github.com/polkiloo/foodrush/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		CustomerID:          req.CustomerID,
		RestaurantID:        req.RestaurantID,
		DriverID:            req.DriverID,
		Items:               items,
		TotalAmount:         req.TotalAmount,
		Status:              model.OrderStatus(req.Status),
		CustomerName:        req.CustomerName,
		RestaurantName:      req.RestaurantName,
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryCoordinates: req.DeliveryCoordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// AssignDriver handles PUT /api/orders/:id/assign-driver.
func (h *OrderHandler) AssignDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	order, err := h.facade.AssignDriver(c.Request.Context(), id, req.DriverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func orderFilterFromQuery(c *gin.Context) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{
		Query:     c.Query("q"),
		Ascending: c.Query("sort") == "asc",
	}

	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = model.OrderStatus(status)
	}

	if period := c.Query("period"); period != "" {
		from, to, err := usecase.PeriodWindow(usecase.Period(period), time.Now())
		if err != nil {
			return filter, err
		}
		filter.From, filter.To = from, to
	} else {
		if from := c.Query("from"); from != "" {
			t, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return filter, domainErrors.ErrValidation
			}
			filter.From = &t
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return filter, domainErrors.ErrValidation
			}
			filter.To = &t
		}
	}

	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return filter, domainErrors.ErrValidation
		}
		filter.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return filter, domainErrors.ErrValidation
		}
		filter.Offset = n
	}

	return filter, nil
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemPayload{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}

	return dto.OrderResponse{
		ID:                  order.ID,
		CustomerID:          order.CustomerID,
		RestaurantID:        order.RestaurantID,
		DriverID:            order.DriverID,
		Items:               items,
		TotalAmount:         order.TotalAmount,
		Status:              string(order.Status),
		CustomerName:        order.CustomerName,
		RestaurantName:      order.RestaurantName,
		DriverName:          order.DriverName,
		DeliveryAddress:     order.DeliveryAddress,
		DeliveryCoordinates: order.DeliveryCoordinates,
		CreatedAt:           order.CreatedAt,
		ConfirmedAt:         order.ConfirmedAt,
		InTransitAt:         order.InTransitAt,
		DeliveredAt:         order.DeliveredAt,
		CancelledAt:         order.CancelledAt,
	}
}
