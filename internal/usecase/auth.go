package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	pkgAuth "github.com/polkiloo/foodrush/internal/pkg/auth"
)

// AuthUseCase handles operator accounts and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new operator account.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return nil, domainErrors.ErrValidation
	}
	if !strings.Contains(email, "@") {
		return nil, domainErrors.ErrValidation
	}
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, email, hash, role)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return usr, nil
}

// Authenticate validates credentials and returns the user with an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.IsActive {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches the user row behind a parsed token. Inactive accounts are
// treated as absent so stale tokens stop working once a user is deactivated.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !usr.IsActive {
		return nil, domainErrors.ErrNotFound
	}
	return usr, nil
}

// ListUsers returns all accounts; restricted to administrators.
func (u *AuthUseCase) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}
	return u.users.List(ctx)
}
