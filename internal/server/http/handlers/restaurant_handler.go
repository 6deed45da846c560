package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

// RestaurantHandler manages restaurant endpoints.
type RestaurantHandler struct {
	facade RestaurantFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade RestaurantFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	restaurant, err := h.facade.CreateRestaurant(c.Request.Context(), &model.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		CuisineType: req.CuisineType,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRestaurantResponse(restaurant))
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	restaurant, err := h.facade.Restaurant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.facade.Restaurants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		response = append(response, toRestaurantResponse(&restaurants[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/restaurants/:id.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	restaurant, err := h.facade.UpdateRestaurant(c.Request.Context(), id, repository.RestaurantUpdate{
		Name:        req.Name,
		Address:     req.Address,
		CuisineType: req.CuisineType,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// Delete handles DELETE /api/restaurants/:id.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteRestaurant(c.Request.Context(), CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toRestaurantResponse(restaurant *model.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Address:     restaurant.Address,
		CuisineType: restaurant.CuisineType,
		Coordinates: restaurant.Coordinates,
		CreatedAt:   restaurant.CreatedAt,
	}
}
