package repository

import (
	"context"

	"github.com/polkiloo/foodrush/internal/domain/model"
)

// UserRepository describes persistence operations with operator accounts.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
