package fare

import (
	"math"
	"time"
)

// TripDays returns the chargeable day count for a trip. Only round
// trips with an explicit drop date span more than one day; the count
// never drops below 1 even for a same-day or past-dated drop.
func TripDays(pickupAt time.Time, dropDate *time.Time) int {
	if dropDate == nil {
		return 1
	}

	pickupDay := time.Date(pickupAt.Year(), pickupAt.Month(), pickupAt.Day(), 0, 0, 0, 0, pickupAt.Location())
	dropDay := time.Date(dropDate.Year(), dropDate.Month(), dropDate.Day(), 0, 0, 0, 0, dropDate.Location())

	days := int(math.Ceil(dropDay.Sub(pickupDay).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// ComputeFare derives the base fare and pre-discount subtotal.
// Pure: identical inputs always produce identical output.
//
// A round trip with a drop date multiplies the full distance by the
// day count; without one the one-way distance is doubled for the
// unmeasured return leg.
func ComputeFare(totalDistanceKm, ratePerKm float64, serviceType ServiceType, pickupAt time.Time, dropDate *time.Time, driverAllowance float64) FareBreakdown {
	tripDays := 1
	if serviceType == ServiceRoundTrip && dropDate != nil {
		tripDays = TripDays(pickupAt, dropDate)
	}

	effectiveDistance := totalDistanceKm
	switch {
	case tripDays > 1:
		effectiveDistance = totalDistanceKm * float64(tripDays)
	case serviceType == ServiceRoundTrip && dropDate == nil:
		effectiveDistance = totalDistanceKm * 2
	}

	baseFare := Round2(effectiveDistance * ratePerKm)

	return FareBreakdown{
		TotalDistanceKm:     totalDistanceKm,
		EffectiveDistanceKm: effectiveDistance,
		TripDays:            tripDays,
		BaseFare:            baseFare,
		DriverAllowance:     driverAllowance,
		Subtotal:            Round2(baseFare + driverAllowance),
	}
}
