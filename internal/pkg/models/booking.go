package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusEnquiry   BookingStatus = "ENQUIRY"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// BookingSource identifies which form created the booking
type BookingSource string

const (
	BookingSourceAdmin   BookingSource = "admin"
	BookingSourceVendor  BookingSource = "vendor"
	BookingSourceWebsite BookingSource = "website"
)

// Stop is an intermediate waypoint on a booking itinerary
type Stop struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Booking is the persisted record of a trip booking or enquiry.
// The fare fields are a snapshot of the engine output at save time;
// re-editing a booking recomputes them from the itinerary fields.
type Booking struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	Source         BookingSource `json:"source" db:"source"`
	CustomerName   string        `json:"customer_name" db:"customer_name"`
	CustomerMobile string        `json:"customer_mobile" db:"customer_mobile"`

	ServiceType     string     `json:"service_type" db:"service_type"`
	PickupAddress   string     `json:"pickup_address" db:"pickup_address"`
	PickupLatitude  float64    `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude float64    `json:"pickup_longitude" db:"pickup_longitude"`
	Stops           []Stop     `json:"stops" db:"-"`
	DropAddress     string     `json:"drop_address" db:"drop_address"`
	DropLatitude    float64    `json:"drop_latitude" db:"drop_latitude"`
	DropLongitude   float64    `json:"drop_longitude" db:"drop_longitude"`
	PickupAt        time.Time  `json:"pickup_at" db:"pickup_at"`
	DropDate        *time.Time `json:"drop_date,omitempty" db:"drop_date"`

	VehicleType string  `json:"vehicle_type" db:"vehicle_type"`
	TariffID    *uuid.UUID `json:"tariff_id,omitempty" db:"tariff_id"`
	RatePerKm   float64 `json:"rate_per_km" db:"rate_per_km"`

	DistanceKm      float64 `json:"distance_km" db:"distance_km"`
	DurationMin     float64 `json:"duration_min" db:"duration_min"`
	TripDays        int     `json:"trip_days" db:"trip_days"`
	BaseFare        float64 `json:"base_fare" db:"base_fare"`
	DriverAllowance float64 `json:"driver_allowance" db:"driver_allowance"`
	Subtotal        float64 `json:"subtotal" db:"subtotal"`

	TaxRegime      string             `json:"tax_regime" db:"tax_regime"`
	Charges        map[string]float64 `json:"charges" db:"-"`
	OfferID        *uuid.UUID         `json:"offer_id,omitempty" db:"offer_id"`
	DiscountAmount float64            `json:"discount_amount" db:"discount_amount"`
	DiscountLocked bool               `json:"discount_locked" db:"discount_locked"`

	FinalAmount     float64 `json:"final_amount" db:"final_amount"`
	AdvanceAmount   float64 `json:"advance_amount" db:"advance_amount"`
	RemainingAmount float64 `json:"remaining_amount" db:"remaining_amount"`
	PaymentStatus   string  `json:"payment_status" db:"payment_status"`

	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// TaxRegime values persisted on bookings
const (
	TaxRegimeGST  = "GST"  // combined CGST+SGST
	TaxRegimeIGST = "IGST" // single rate
	TaxRegimeNone = ""
)

// AdHocCharge is a user-added charge line on a booking request
type AdHocCharge struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// BookingRequest is the form payload for creating or updating a booking
type BookingRequest struct {
	Source         BookingSource `json:"source"`
	CustomerName   string        `json:"customer_name"`
	CustomerMobile string        `json:"customer_mobile"`

	ServiceType     string     `json:"service_type"`
	PickupAddress   string     `json:"pickup_address"`
	PickupLatitude  float64    `json:"pickup_latitude"`
	PickupLongitude float64    `json:"pickup_longitude"`
	Stops           []Stop     `json:"stops"`
	DropAddress     string     `json:"drop_address"`
	DropLatitude    float64    `json:"drop_latitude"`
	DropLongitude   float64    `json:"drop_longitude"`
	PickupAt        time.Time  `json:"pickup_at"`
	DropDate        *time.Time `json:"drop_date,omitempty"`

	VehicleType     string  `json:"vehicle_type"`
	DriverAllowance float64 `json:"driver_allowance"`
	TaxRegime       string  `json:"tax_regime"`

	OfferID        *uuid.UUID    `json:"offer_id,omitempty"`
	DiscountLocked bool          `json:"discount_locked"`
	DiscountAmount float64       `json:"discount_amount"`
	AdHocCharges   []AdHocCharge `json:"ad_hoc_charges"`

	AdvanceAmount float64 `json:"advance_amount"`
}

// BookingQuote is the computed financial preview returned without persisting
type BookingQuote struct {
	DistanceKm      float64            `json:"distance_km"`
	DurationMin     float64            `json:"duration_min"`
	TripDays        int                `json:"trip_days"`
	BaseFare        float64            `json:"base_fare"`
	DriverAllowance float64            `json:"driver_allowance"`
	Subtotal        float64            `json:"subtotal"`
	Charges         map[string]float64 `json:"charges"`
	DiscountAmount  float64            `json:"discount_amount"`
	FinalAmount     float64            `json:"final_amount"`
	AdvanceAmount   float64            `json:"advance_amount"`
	RemainingAmount float64            `json:"remaining_amount"`
	PaymentStatus   string             `json:"payment_status"`
	Warnings        []string           `json:"warnings,omitempty"`
}
