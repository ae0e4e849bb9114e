package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published when a booking is created, updated or completed
type BookingEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Source        string    `json:"source"`
	ServiceType   string    `json:"service_type"`
	FinalAmount   float64   `json:"final_amount"`
	AdvanceAmount float64   `json:"advance_amount"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// InvoiceEvent is published when an invoice is issued
type InvoiceEvent struct {
	InvoiceID       uuid.UUID `json:"invoice_id"`
	BookingID       uuid.UUID `json:"booking_id"`
	FinalAmount     float64   `json:"final_amount"`
	RemainingAmount float64   `json:"remaining_amount"`
	PaymentStatus   string    `json:"payment_status"`
	Timestamp       time.Time `json:"timestamp"`
}
