package model

import "time"

// Settings is the singleton platform configuration record.
type Settings struct {
	ID           int64
	PlatformName string
	ContactEmail string
	SupportPhone string
	UpdatedAt    time.Time
}
