package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRates = TaxRates{CGSTPercent: 2.5, SGSTPercent: 2.5, IGSTPercent: 5}

func TestComputeTaxCombinedRegime(t *testing.T) {
	lines, err := ComputeTax(1000, TaxSelection{Combined: true}, testRates)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		TaxLabelCGST: 25,
		TaxLabelSGST: 25,
	}, lines)
}

func TestComputeTaxSingleRegime(t *testing.T) {
	lines, err := ComputeTax(1000, TaxSelection{Single: true}, testRates)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{TaxLabelIGST: 50}, lines)
}

func TestComputeTaxNoSelection(t *testing.T) {
	lines, err := ComputeTax(1000, TaxSelection{}, testRates)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestComputeTaxBothSelectedRejected(t *testing.T) {
	_, err := ComputeTax(1000, TaxSelection{Combined: true, Single: true}, testRates)

	assert.ErrorIs(t, err, ErrAmbiguousTaxSelection)
}

func TestComputeTaxRoundsLines(t *testing.T) {
	lines, err := ComputeTax(333.33, TaxSelection{Combined: true}, testRates)

	require.NoError(t, err)
	assert.Equal(t, 8.33, lines[TaxLabelCGST])
	assert.Equal(t, 8.33, lines[TaxLabelSGST])
}
