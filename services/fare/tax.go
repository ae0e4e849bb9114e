package fare

// Tax line labels. Fixed: ad hoc charges may not reuse them.
const (
	TaxLabelCGST = "CGST"
	TaxLabelSGST = "SGST"
	TaxLabelIGST = "IGST"
)

// ComputeTax applies the selected regime to the subtotal and returns
// named tax lines. No selection means no tax; selecting both regimes
// is rejected even though the forms enforce exclusion.
func ComputeTax(subtotal float64, selection TaxSelection, rates TaxRates) (map[string]float64, error) {
	if selection.Combined && selection.Single {
		return nil, ErrAmbiguousTaxSelection
	}

	lines := make(map[string]float64)

	switch {
	case selection.Combined:
		lines[TaxLabelCGST] = Round2(subtotal * rates.CGSTPercent / 100)
		lines[TaxLabelSGST] = Round2(subtotal * rates.SGSTPercent / 100)
	case selection.Single:
		lines[TaxLabelIGST] = Round2(subtotal * rates.IGSTPercent / 100)
	}

	return lines, nil
}
