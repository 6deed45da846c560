package model

import "time"

// DriverStatus describes driver availability.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// ValidDriverStatus reports whether s is a known driver status.
func ValidDriverStatus(s DriverStatus) bool {
	switch s {
	case DriverStatusAvailable, DriverStatusBusy, DriverStatusOffline:
		return true
	}
	return false
}

// Driver represents a delivery driver.
type Driver struct {
	ID        int64
	Name      string
	Status    DriverStatus
	CreatedAt time.Time
}
