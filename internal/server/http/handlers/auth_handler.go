package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

// AuthHandler processes registration, login, and account listing.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Token handles POST /api/auth/token (form-encoded credentials).
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, token, err := h.facade.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Me handles GET /api/auth/users/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/auth/users (administrators only).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
