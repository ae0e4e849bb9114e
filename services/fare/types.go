package fare

import (
	"math"
	"time"
)

// ServiceType enumerates the bookable trip kinds
type ServiceType string

const (
	ServiceOneWay        ServiceType = "One Way"
	ServiceRoundTrip     ServiceType = "Round Trip"
	ServiceHourlyPackage ServiceType = "Hourly Package"
)

// Waypoint is a single named point on an itinerary
type Waypoint struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// IsZero reports whether the waypoint is unset
func (w Waypoint) IsZero() bool {
	return w.Address == "" && w.Latitude == 0 && w.Longitude == 0
}

// Itinerary describes the trip being priced
type Itinerary struct {
	Pickup      Waypoint
	Stops       []Waypoint
	Drop        Waypoint
	ServiceType ServiceType
	PickupAt    time.Time
	DropDate    *time.Time
}

// Waypoints returns the ordered waypoint sequence the legs are measured
// over. For a round trip with at least one stop the pickup is appended
// again to close the loop; a stop-free round trip keeps the one-way
// sequence and the fare stage doubles the distance instead.
// Returns nil when pickup or drop is unset.
func (it Itinerary) Waypoints() []Waypoint {
	if it.Pickup.IsZero() || it.Drop.IsZero() {
		return nil
	}

	points := make([]Waypoint, 0, len(it.Stops)+3)
	points = append(points, it.Pickup)
	points = append(points, it.Stops...)
	points = append(points, it.Drop)

	if it.ServiceType == ServiceRoundTrip && len(it.Stops) > 0 {
		points = append(points, it.Pickup)
	}

	return points
}

// LegDistance is an externally measured distance for one consecutive
// waypoint pair
type LegDistance struct {
	FromIndex   int
	ToIndex     int
	DistanceKm  float64
	DurationMin float64
}

// TravelSummary is the aggregated distance and duration for a trip
type TravelSummary struct {
	TotalDistanceKm  float64
	TotalDurationMin float64
}

// FareBreakdown is the distance-based fare before tax and discount
type FareBreakdown struct {
	TotalDistanceKm     float64
	EffectiveDistanceKm float64
	TripDays            int
	BaseFare            float64
	DriverAllowance     float64
	Subtotal            float64
}

// TaxSelection carries the regime flags as the form sets them.
// Exactly one may be selected; selecting neither means no tax.
type TaxSelection struct {
	Combined bool
	Single   bool
}

// TaxRates holds the configured tax component percentages
type TaxRates struct {
	CGSTPercent float64
	SGSTPercent float64
	IGSTPercent float64
}

// OfferType enumerates discount kinds
type OfferType string

const (
	OfferFlat       OfferType = "Flat"
	OfferPercentage OfferType = "Percentage"
)

// Offer is a promotional discount definition, read-only reference data
type Offer struct {
	ID       string
	Name     string
	Type     OfferType
	Value    float64
	Category string
	Active   bool
}

// OfferCategoryAll matches every service type
const OfferCategoryAll = "All"

// DiscountState distinguishes a live computed discount from one carried
// over verbatim from an existing booking
type DiscountState struct {
	Offer        *Offer
	Locked       bool
	LockedAmount float64
}

// Charge is a single named amount on the booking
type Charge struct {
	Label  string
	Amount float64
	Fixed  bool
}

// Ledger is the merged charge map and the resulting payable amount
type Ledger struct {
	Charges     map[string]float64
	FinalAmount float64
}

// PaymentStatus enumerates settlement states
type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "Unpaid"
	PaymentPartialPaid PaymentStatus = "Partial Paid"
	PaymentPaid        PaymentStatus = "Paid"
)

// PaymentState is derived from the final and advance amounts
type PaymentState struct {
	Status          PaymentStatus
	RemainingAmount float64
}

// Round2 rounds a monetary amount to two decimals
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
