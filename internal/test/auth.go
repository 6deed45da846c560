package test

import (
	"context"
	"errors"

	"github.com/polkiloo/foodrush/internal/domain/model"
	pkgAuth "github.com/polkiloo/foodrush/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenVerifierStub implements middleware token verification contract.
type TokenVerifierStub struct {
	ID       int64
	User     *model.User
	ParseErr error
	LoadErr  error
	ParseFn  func(string) (int64, error)
	UserFn   func(context.Context, int64) (*model.User, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenVerifierStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.ParseErr != nil {
		return 0, s.ParseErr
	}
	return s.ID, nil
}

// UserByID resolves the configured user record.
func (s TokenVerifierStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: id, Username: "operator", Role: model.RoleUser, IsActive: true}, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserFn         func(context.Context, int64) (*model.User, error)
	ListFn         func(context.Context, *model.User) ([]model.User, error)
}

// Register returns a user record for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password, role)
	}
	if role == "" {
		role = model.RoleUser
	}
	return &model.User{ID: 1, Username: username, Email: email, Role: role, IsActive: true}, nil
}

// Authenticate returns user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleUser, IsActive: true}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID resolves the authenticated user record.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Username: "operator", Role: model.RoleUser, IsActive: true}, nil
}

// ListUsers returns the configured account roster.
func (s AuthFacadeStub) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.User{{ID: 1, Username: "operator", Role: model.RoleUser, IsActive: true}}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
