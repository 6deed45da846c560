package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

// SettingsHandler manages the platform settings endpoints.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// Update handles POST /api/settings (administrators only).
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	settings, err := h.facade.UpdateSettings(c.Request.Context(), CurrentUser(c), repository.SettingsUpdate{
		PlatformName: req.PlatformName,
		ContactEmail: req.ContactEmail,
		SupportPhone: req.SupportPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

func toSettingsResponse(settings *model.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		ID:           settings.ID,
		PlatformName: settings.PlatformName,
		ContactEmail: settings.ContactEmail,
		SupportPhone: settings.SupportPhone,
		UpdatedAt:    settings.UpdatedAt,
	}
}
