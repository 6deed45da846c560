package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.Name, toModelAddresses(req.Addresses))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		response = append(response, toCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	update := repository.CustomerUpdate{Name: req.Name}
	if req.Addresses != nil {
		update.Addresses = toModelAddresses(req.Addresses)
	}

	customer, err := h.facade.UpdateCustomer(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toModelAddresses(addresses []dto.CustomerAddressPayload) []model.CustomerAddress {
	result := make([]model.CustomerAddress, 0, len(addresses))
	for _, addr := range addresses {
		result = append(result, model.CustomerAddress{Address: addr.Address, IsDefault: addr.IsDefault})
	}
	return result
}

func toCustomerResponse(customer *model.Customer) dto.CustomerResponse {
	addresses := make([]dto.CustomerAddressPayload, 0, len(customer.Addresses))
	for _, addr := range customer.Addresses {
		addresses = append(addresses, dto.CustomerAddressPayload{Address: addr.Address, IsDefault: addr.IsDefault})
	}
	return dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Addresses: addresses,
		CreatedAt: customer.CreatedAt,
	}
}
