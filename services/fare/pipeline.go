package fare

// Input is the full snapshot a booking form feeds into the engine
type Input struct {
	Itinerary       Itinerary
	Legs            []LegDistance
	RatePerKm       float64
	DriverAllowance float64
	TaxSelection    TaxSelection
	TaxRates        TaxRates
	Offers          []Offer
	Discount        DiscountState
	AdHocCharges    []Charge
	AdvanceAmount   float64
}

// Output is the complete derived financial state for one input snapshot
type Output struct {
	Travel         TravelSummary
	Fare           FareBreakdown
	TaxLines       map[string]float64
	AppliedOffer   *Offer
	DiscountAmount float64
	Ledger         Ledger
	Payment        PaymentState
	Warnings       []Warning
}

// ComputeBookingFinancials runs the full pricing pipeline over one
// input snapshot. Pure: no state survives between calls, so the form
// layer re-invokes it on every relevant edit and discards stale
// results freely.
func ComputeBookingFinancials(in Input) (Output, error) {
	var out Output

	out.Travel = ComputeDistance(in.Itinerary.Waypoints(), in.Legs)

	out.Fare = ComputeFare(
		out.Travel.TotalDistanceKm,
		in.RatePerKm,
		in.Itinerary.ServiceType,
		in.Itinerary.PickupAt,
		in.Itinerary.DropDate,
		in.DriverAllowance,
	)

	taxLines, err := ComputeTax(out.Fare.Subtotal, in.TaxSelection, in.TaxRates)
	if err != nil {
		return Output{}, err
	}
	out.TaxLines = taxLines

	discount := in.Discount
	if discount.Offer == nil && !discount.Locked {
		discount.Offer = ResolveOffer(in.Offers, in.Itinerary.ServiceType)
	}
	out.AppliedOffer = discount.Offer
	out.DiscountAmount = ComputeDiscount(discount, out.Fare.Subtotal)
	if discount.Locked {
		out.Warnings = append(out.Warnings, WarnDiscountLocked)
	}

	ledger, warnings, err := BuildCharges(
		out.Fare.Subtotal,
		in.DriverAllowance,
		out.TaxLines,
		out.DiscountAmount,
		in.AdHocCharges,
	)
	if err != nil {
		return Output{}, err
	}
	out.Ledger = ledger
	out.Warnings = append(out.Warnings, warnings...)

	payment, err := ReconcilePayment(out.Ledger.FinalAmount, in.AdvanceAmount)
	if err != nil {
		// the breakdown is still returned so the form can show what
		// drove the final amount negative
		return out, err
	}
	out.Payment = payment

	return out, nil
}
