package models

import (
	"time"

	"github.com/google/uuid"
)

// Tariff is the per-vehicle, per-service-type rate card.
// Reference data: fetched externally, read-only to the fare engine.
type Tariff struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	VehicleType        string    `json:"vehicle_type" db:"vehicle_type"`
	ServiceType        string    `json:"service_type" db:"service_type"`
	RatePerKm          float64   `json:"rate_per_km" db:"rate_per_km"`
	DriverAllowancePerDay float64 `json:"driver_allowance_per_day" db:"driver_allowance_per_day"`
	Active             bool      `json:"active" db:"active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
