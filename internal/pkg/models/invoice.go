package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is the billing document issued for a booking.
// Its amounts are recomputed from the booking snapshot at issue time.
type Invoice struct {
	ID              uuid.UUID          `json:"id" db:"id"`
	BookingID       uuid.UUID          `json:"booking_id" db:"booking_id"`
	Charges         map[string]float64 `json:"charges" db:"-"`
	Subtotal        float64            `json:"subtotal" db:"subtotal"`
	DiscountAmount  float64            `json:"discount_amount" db:"discount_amount"`
	FinalAmount     float64            `json:"final_amount" db:"final_amount"`
	AdvanceAmount   float64            `json:"advance_amount" db:"advance_amount"`
	RemainingAmount float64            `json:"remaining_amount" db:"remaining_amount"`
	PaymentStatus   string             `json:"payment_status" db:"payment_status"`
	IssuedAt        time.Time          `json:"issued_at" db:"issued_at"`
}
