package dto

import "time"

// UpdateSettingsRequest carries optional settings fields to change.
type UpdateSettingsRequest struct {
	PlatformName *string `json:"platform_name"`
	ContactEmail *string `json:"contact_email"`
	SupportPhone *string `json:"support_phone"`
}

// SettingsResponse describes the platform settings record.
type SettingsResponse struct {
	ID           int64     `json:"id"`
	PlatformName string    `json:"platform_name"`
	ContactEmail string    `json:"contact_email"`
	SupportPhone string    `json:"support_phone"`
	UpdatedAt    time.Time `json:"updated_at"`
}
