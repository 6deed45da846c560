package dto

import "time"

// CustomerAddressPayload is one saved delivery address.
type CustomerAddressPayload struct {
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// CreateCustomerRequest describes customer creation payload.
type CreateCustomerRequest struct {
	Name      string                   `json:"name"`
	Addresses []CustomerAddressPayload `json:"addresses"`
}

// UpdateCustomerRequest carries optional customer fields to change.
type UpdateCustomerRequest struct {
	Name      *string                  `json:"name"`
	Addresses []CustomerAddressPayload `json:"addresses"`
}

// CustomerResponse describes a customer record.
type CustomerResponse struct {
	ID        int64                    `json:"id"`
	Name      string                   `json:"name"`
	Addresses []CustomerAddressPayload `json:"addresses"`
	CreatedAt time.Time                `json:"created_at"`
}
