package fare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineInput() Input {
	return Input{
		Itinerary: Itinerary{
			Pickup:      waypoint("pickup"),
			Drop:        waypoint("drop"),
			ServiceType: ServiceOneWay,
			PickupAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		Legs: []LegDistance{
			{FromIndex: 0, ToIndex: 1, DistanceKm: 100, DurationMin: 120},
		},
		RatePerKm:       10,
		DriverAllowance: 0,
		TaxSelection:    TaxSelection{Combined: true},
		TaxRates:        testRates,
		AdvanceAmount:   0,
	}
}

func TestComputeBookingFinancialsFullPipeline(t *testing.T) {
	out, err := ComputeBookingFinancials(pipelineInput())

	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Travel.TotalDistanceKm)
	assert.Equal(t, 1000.0, out.Fare.BaseFare)
	assert.Equal(t, 25.0, out.TaxLines[TaxLabelCGST])
	assert.Equal(t, 25.0, out.TaxLines[TaxLabelSGST])
	assert.Equal(t, 1050.0, out.Ledger.FinalAmount)
	assert.Equal(t, PaymentUnpaid, out.Payment.Status)
	assert.Equal(t, 1050.0, out.Payment.RemainingAmount)
	assert.Empty(t, out.Warnings)
}

func TestComputeBookingFinancialsResolvesOffer(t *testing.T) {
	in := pipelineInput()
	in.Offers = []Offer{
		{ID: "ten-off", Type: OfferPercentage, Value: 10, Category: OfferCategoryAll, Active: true},
	}

	out, err := ComputeBookingFinancials(in)

	require.NoError(t, err)
	require.NotNil(t, out.AppliedOffer)
	assert.Equal(t, "ten-off", out.AppliedOffer.ID)
	assert.Equal(t, 100.0, out.DiscountAmount)
	assert.Equal(t, 950.0, out.Ledger.FinalAmount)
}

func TestComputeBookingFinancialsLockedDiscountWarns(t *testing.T) {
	in := pipelineInput()
	in.Discount = DiscountState{Locked: true, LockedAmount: 75}

	out, err := ComputeBookingFinancials(in)

	require.NoError(t, err)
	assert.Equal(t, 75.0, out.DiscountAmount)
	assert.Contains(t, out.Warnings, WarnDiscountLocked)
}

func TestComputeBookingFinancialsAmbiguousTaxFails(t *testing.T) {
	in := pipelineInput()
	in.TaxSelection = TaxSelection{Combined: true, Single: true}

	_, err := ComputeBookingFinancials(in)

	assert.ErrorIs(t, err, ErrAmbiguousTaxSelection)
}

func TestComputeBookingFinancialsNegativeFinalFails(t *testing.T) {
	in := pipelineInput()
	in.TaxSelection = TaxSelection{}
	in.Discount = DiscountState{Locked: true, LockedAmount: 5000}

	out, err := ComputeBookingFinancials(in)

	assert.ErrorIs(t, err, ErrInvalidFare)
	assert.Contains(t, out.Warnings, WarnNegativeFinal)
	assert.Equal(t, -4000.0, out.Ledger.FinalAmount)
}

func TestComputeBookingFinancialsIdempotent(t *testing.T) {
	in := pipelineInput()
	in.Offers = []Offer{
		{ID: "flat", Type: OfferFlat, Value: 150, Category: OfferCategoryAll, Active: true},
	}
	in.AdHocCharges = []Charge{{Label: "Toll", Amount: 80}}
	in.AdvanceAmount = 500

	first, err := ComputeBookingFinancials(in)
	require.NoError(t, err)

	second, err := ComputeBookingFinancials(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeBookingFinancialsPartialPayment(t *testing.T) {
	in := pipelineInput()
	in.TaxSelection = TaxSelection{}
	in.AdvanceAmount = 400

	out, err := ComputeBookingFinancials(in)

	require.NoError(t, err)
	assert.Equal(t, PaymentPartialPaid, out.Payment.Status)
	assert.Equal(t, 600.0, out.Payment.RemainingAmount)
}
