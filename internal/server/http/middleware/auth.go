package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	pkgAuth "github.com/polkiloo/foodrush/internal/pkg/auth"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	// UserContextKey is a gin context key for the loaded user record.
	UserContextKey = "user"
)

// TokenVerifier resolves a bearer token into a live user record.
type TokenVerifier interface {
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired ensures the request carries a valid token for an active user.
// The user row is loaded on every request, so revoked accounts lose access
// even while their tokens are still unexpired.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "missing bearer token"})
			return
		}

		userID, err := verifier.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
			return
		}

		user, err := verifier.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(UserContextKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
