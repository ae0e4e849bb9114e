package usecase

import (
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

func itineraryFromRequest(req *models.BookingRequest) fare.Itinerary {
	stops := make([]fare.Waypoint, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, fare.Waypoint{
			Address:   s.Address,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		})
	}

	return fare.Itinerary{
		Pickup: fare.Waypoint{
			Address:   req.PickupAddress,
			Latitude:  req.PickupLatitude,
			Longitude: req.PickupLongitude,
		},
		Stops: stops,
		Drop: fare.Waypoint{
			Address:   req.DropAddress,
			Latitude:  req.DropLatitude,
			Longitude: req.DropLongitude,
		},
		ServiceType: fare.ServiceType(req.ServiceType),
		PickupAt:    req.PickupAt,
		DropDate:    req.DropDate,
	}
}

func taxSelection(regime string) fare.TaxSelection {
	switch regime {
	case models.TaxRegimeGST:
		return fare.TaxSelection{Combined: true}
	case models.TaxRegimeIGST:
		return fare.TaxSelection{Single: true}
	default:
		return fare.TaxSelection{}
	}
}

func engineOffer(o models.Offer) fare.Offer {
	return fare.Offer{
		ID:       o.ID.String(),
		Name:     o.Name,
		Type:     fare.OfferType(o.Type),
		Value:    o.Value,
		Category: o.Category,
		Active:   o.Active,
	}
}

func engineOffers(offers []models.Offer) []fare.Offer {
	out := make([]fare.Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, engineOffer(o))
	}
	return out
}

func engineCharges(charges []models.AdHocCharge) []fare.Charge {
	out := make([]fare.Charge, 0, len(charges))
	for _, c := range charges {
		out = append(out, fare.Charge{Label: c.Label, Amount: c.Amount})
	}
	return out
}

func warningStrings(warnings []fare.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, string(w))
	}
	return out
}

func quoteFromOutput(out *fare.Output, advance float64) *models.BookingQuote {
	return &models.BookingQuote{
		DistanceKm:      out.Travel.TotalDistanceKm,
		DurationMin:     out.Travel.TotalDurationMin,
		TripDays:        out.Fare.TripDays,
		BaseFare:        out.Fare.BaseFare,
		DriverAllowance: out.Fare.DriverAllowance,
		Subtotal:        out.Fare.Subtotal,
		Charges:         out.Ledger.Charges,
		DiscountAmount:  out.DiscountAmount,
		FinalAmount:     out.Ledger.FinalAmount,
		AdvanceAmount:   advance,
		RemainingAmount: out.Payment.RemainingAmount,
		PaymentStatus:   string(out.Payment.Status),
		Warnings:        warningStrings(out.Warnings),
	}
}

func bookingFromRequest(req *models.BookingRequest, out *fare.Output, tariff *models.Tariff) *models.Booking {
	tariffID := tariff.ID

	b := &models.Booking{
		Source:         req.Source,
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,

		ServiceType:     req.ServiceType,
		PickupAddress:   req.PickupAddress,
		PickupLatitude:  req.PickupLatitude,
		PickupLongitude: req.PickupLongitude,
		Stops:           req.Stops,
		DropAddress:     req.DropAddress,
		DropLatitude:    req.DropLatitude,
		DropLongitude:   req.DropLongitude,
		PickupAt:        req.PickupAt,
		DropDate:        req.DropDate,

		VehicleType: req.VehicleType,
		TariffID:    &tariffID,
		RatePerKm:   tariff.RatePerKm,

		DistanceKm:      out.Travel.TotalDistanceKm,
		DurationMin:     out.Travel.TotalDurationMin,
		TripDays:        out.Fare.TripDays,
		BaseFare:        out.Fare.BaseFare,
		DriverAllowance: out.Fare.DriverAllowance,
		Subtotal:        out.Fare.Subtotal,

		TaxRegime:      req.TaxRegime,
		Charges:        out.Ledger.Charges,
		DiscountAmount: out.DiscountAmount,
		DiscountLocked: req.DiscountLocked,

		FinalAmount:     out.Ledger.FinalAmount,
		AdvanceAmount:   req.AdvanceAmount,
		RemainingAmount: out.Payment.RemainingAmount,
		PaymentStatus:   string(out.Payment.Status),
	}

	if req.OfferID != nil {
		offerID := *req.OfferID
		b.OfferID = &offerID
	}

	return b
}
