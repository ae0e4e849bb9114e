package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChargesMergesAll(t *testing.T) {
	taxLines := map[string]float64{TaxLabelCGST: 25, TaxLabelSGST: 25}
	adHoc := []Charge{{Label: "Toll", Amount: 120}}

	ledger, warnings, err := BuildCharges(1000, 300, taxLines, 100, adHoc)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, map[string]float64{
		ChargeLabelDriverAllowance: 300,
		TaxLabelCGST:               25,
		TaxLabelSGST:               25,
		"Toll":                     120,
		ChargeLabelDiscount:        100,
	}, ledger.Charges)
	assert.Equal(t, 1070.0, ledger.FinalAmount)
}

func TestBuildChargesExcludesZeroAmounts(t *testing.T) {
	taxLines := map[string]float64{TaxLabelIGST: 0}
	adHoc := []Charge{
		{Label: "Toll", Amount: 0},
		{Label: "Hill Charge", Amount: 0},
		{Label: "Permit", Amount: 0},
	}

	ledger, _, err := BuildCharges(1000, 0, taxLines, 0, adHoc)

	require.NoError(t, err)
	assert.Empty(t, ledger.Charges)
	assert.Equal(t, 1000.0, ledger.FinalAmount)
}

func TestBuildChargesRejectsFixedLabelCollision(t *testing.T) {
	adHoc := []Charge{{Label: TaxLabelCGST, Amount: 50}}

	_, _, err := BuildCharges(1000, 0, nil, 0, adHoc)

	assert.ErrorIs(t, err, ErrDuplicateChargeLabel)
}

func TestBuildChargesRejectsDuplicateAdHocLabel(t *testing.T) {
	adHoc := []Charge{
		{Label: "Toll", Amount: 50},
		{Label: "Toll", Amount: 70},
	}

	_, _, err := BuildCharges(1000, 0, nil, 0, adHoc)

	assert.ErrorIs(t, err, ErrDuplicateChargeLabel)
}

func TestBuildChargesNegativeFinalWarns(t *testing.T) {
	ledger, warnings, err := BuildCharges(100, 0, nil, 500, nil)

	require.NoError(t, err)
	assert.Equal(t, -400.0, ledger.FinalAmount)
	assert.Contains(t, warnings, WarnNegativeFinal)
}

func TestBuildChargesAllowanceCountedOnce(t *testing.T) {
	// allowance is inside the subtotal; it appears in the map as a
	// display line but must not be added to the final again
	ledger, _, err := BuildCharges(1300, 300, nil, 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 300.0, ledger.Charges[ChargeLabelDriverAllowance])
	assert.Equal(t, 1300.0, ledger.FinalAmount)
}
