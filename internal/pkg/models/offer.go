package models

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a promotional discount definition.
// Category is a service-type name or "All"; inactive offers are never applied.
type Offer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"` // Flat or Percentage
	Value     float64   `json:"value" db:"value"`
	Category  string    `json:"category" db:"category"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
