package model

import "time"

// Role values recognized by permission checks.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a dashboard operator account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds administrator permissions.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
