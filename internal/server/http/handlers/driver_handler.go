package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

// DriverHandler manages driver roster endpoints.
type DriverHandler struct {
	facade DriverFacade
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(facade DriverFacade) *DriverHandler {
	return &DriverHandler{facade: facade}
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	driver, err := h.facade.CreateDriver(c.Request.Context(), req.Name, model.DriverStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDriverResponse(driver))
}

// Get handles GET /api/drivers/:id.
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	driver, err := h.facade.Driver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponse(driver))
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(c *gin.Context) {
	var status model.DriverStatus
	if s := c.Query("status"); s != "" && s != "all" {
		status = model.DriverStatus(s)
	}

	drivers, err := h.facade.Drivers(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.DriverResponse, 0, len(drivers))
	for i := range drivers {
		response = append(response, toDriverResponse(&drivers[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	update := repository.DriverUpdate{Name: req.Name}
	if req.Status != nil {
		status := model.DriverStatus(*req.Status)
		update.Status = &status
	}

	driver, err := h.facade.UpdateDriver(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponse(driver))
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteDriver(c.Request.Context(), CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toDriverResponse(driver *model.Driver) dto.DriverResponse {
	return dto.DriverResponse{
		ID:        driver.ID,
		Name:      driver.Name,
		Status:    string(driver.Status),
		CreatedAt: driver.CreatedAt,
	}
}
