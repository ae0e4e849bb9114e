package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOfferExactCategoryWins(t *testing.T) {
	offers := []Offer{
		{ID: "all", Category: OfferCategoryAll, Active: true},
		{ID: "round", Category: string(ServiceRoundTrip), Active: true},
	}

	offer := ResolveOffer(offers, ServiceRoundTrip)

	assert.NotNil(t, offer)
	assert.Equal(t, "round", offer.ID)
}

func TestResolveOfferFallsBackToWildcard(t *testing.T) {
	offers := []Offer{
		{ID: "oneway", Category: string(ServiceOneWay), Active: true},
		{ID: "all", Category: OfferCategoryAll, Active: true},
	}

	offer := ResolveOffer(offers, ServiceRoundTrip)

	assert.NotNil(t, offer)
	assert.Equal(t, "all", offer.ID)
}

func TestResolveOfferSkipsInactive(t *testing.T) {
	offers := []Offer{
		{ID: "exact", Category: string(ServiceOneWay), Active: false},
		{ID: "all", Category: OfferCategoryAll, Active: false},
	}

	assert.Nil(t, ResolveOffer(offers, ServiceOneWay))
}

func TestResolveOfferNoOffers(t *testing.T) {
	assert.Nil(t, ResolveOffer(nil, ServiceOneWay))
}

func TestComputeDiscountPercentage(t *testing.T) {
	offer := &Offer{Type: OfferPercentage, Value: 10}

	amount := ComputeDiscount(DiscountState{Offer: offer}, 1000)

	assert.Equal(t, 100.0, amount)
}

func TestComputeDiscountFlatExactValue(t *testing.T) {
	offer := &Offer{Type: OfferFlat, Value: 150}

	assert.Equal(t, 150.0, ComputeDiscount(DiscountState{Offer: offer}, 1000))
	assert.Equal(t, 150.0, ComputeDiscount(DiscountState{Offer: offer}, 50))
}

func TestComputeDiscountLockedIgnoresSubtotal(t *testing.T) {
	offer := &Offer{Type: OfferPercentage, Value: 10}
	state := DiscountState{Offer: offer, Locked: true, LockedAmount: 42}

	assert.Equal(t, 42.0, ComputeDiscount(state, 1000))
	assert.Equal(t, 42.0, ComputeDiscount(state, 5000))
}

func TestComputeDiscountUnlockedRecomputes(t *testing.T) {
	offer := &Offer{Type: OfferPercentage, Value: 10}
	state := DiscountState{Offer: offer, Locked: false}

	assert.Equal(t, 100.0, ComputeDiscount(state, 1000))
	assert.Equal(t, 500.0, ComputeDiscount(state, 5000))
}

func TestComputeDiscountNoOffer(t *testing.T) {
	assert.Zero(t, ComputeDiscount(DiscountState{}, 1000))
}
