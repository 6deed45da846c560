package model

import "time"

// CustomerAddress is one saved delivery address.
type CustomerAddress struct {
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// Customer represents an ordering customer.
type Customer struct {
	ID        int64
	Name      string
	Addresses []CustomerAddress
	CreatedAt time.Time
}
