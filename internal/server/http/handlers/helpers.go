package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
	"github.com/polkiloo/foodrush/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user loaded by the auth middleware.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// pathID parses the :id path parameter, responding 404 on malformed values.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "not found"})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Detail: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
	}
}
