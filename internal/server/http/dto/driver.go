package dto

import "time"

// CreateDriverRequest describes driver creation payload.
type CreateDriverRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UpdateDriverRequest carries optional driver fields to change.
type UpdateDriverRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// DriverResponse describes a driver record.
type DriverResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
