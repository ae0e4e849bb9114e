package fare

// ResolveOffer returns the first active offer whose category matches
// the service type exactly, falling back to the first active wildcard
// offer. Returns nil when nothing qualifies.
func ResolveOffer(offers []Offer, serviceType ServiceType) *Offer {
	var wildcard *Offer

	for i := range offers {
		offer := &offers[i]
		if !offer.Active {
			continue
		}
		if offer.Category == string(serviceType) {
			return offer
		}
		if wildcard == nil && offer.Category == OfferCategoryAll {
			wildcard = offer
		}
	}

	return wildcard
}

// ComputeDiscount converts the discount state into a concrete amount.
// A locked amount is returned verbatim regardless of the subtotal; a
// flat offer is not capped, it may exceed the subtotal and the charge
// stage surfaces the negative final as a warning.
func ComputeDiscount(state DiscountState, subtotal float64) float64 {
	if state.Locked {
		return state.LockedAmount
	}

	if state.Offer == nil {
		return 0
	}

	switch state.Offer.Type {
	case OfferFlat:
		return Round2(state.Offer.Value)
	case OfferPercentage:
		return Round2(subtotal * state.Offer.Value / 100)
	default:
		return 0
	}
}
