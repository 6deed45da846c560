package auth

import "time"

// Strategy issues and verifies auth tokens carrying a user identifier.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
