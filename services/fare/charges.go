package fare

// Fixed charge labels besides the tax lines
const (
	ChargeLabelDriverAllowance = "Driver Allowance"
	ChargeLabelDiscount        = "Discount"
)

// BuildCharges merges the fare components and ad hoc charges into one
// labeled map and derives the final amount. Zero-valued entries are
// excluded from the map. The driver allowance is already part of the
// subtotal so the final adds only taxes and ad hoc charges on top.
//
// An ad hoc label colliding with a fixed label or another ad hoc
// charge is rejected. A negative final is returned with a warning, the
// reconciliation stage refuses to settle it.
func BuildCharges(subtotal, driverAllowance float64, taxLines map[string]float64, discount float64, adHoc []Charge) (Ledger, []Warning, error) {
	charges := make(map[string]float64)

	if driverAllowance != 0 {
		charges[ChargeLabelDriverAllowance] = driverAllowance
	}

	var taxTotal float64
	for label, amount := range taxLines {
		if amount == 0 {
			continue
		}
		charges[label] = amount
		taxTotal += amount
	}

	var adHocTotal float64
	for _, charge := range adHoc {
		if charge.Label == "" {
			continue
		}
		if _, exists := charges[charge.Label]; exists {
			return Ledger{}, nil, ErrDuplicateChargeLabel
		}
		if isFixedLabel(charge.Label) {
			return Ledger{}, nil, ErrDuplicateChargeLabel
		}
		if charge.Amount == 0 {
			continue
		}
		charges[charge.Label] = charge.Amount
		adHocTotal += charge.Amount
	}

	if discount != 0 {
		charges[ChargeLabelDiscount] = discount
	}

	final := Round2(subtotal + taxTotal + adHocTotal - discount)

	var warnings []Warning
	if final < 0 {
		warnings = append(warnings, WarnNegativeFinal)
	}

	return Ledger{Charges: charges, FinalAmount: final}, warnings, nil
}

func isFixedLabel(label string) bool {
	switch label {
	case ChargeLabelDriverAllowance, ChargeLabelDiscount, TaxLabelCGST, TaxLabelSGST, TaxLabelIGST:
		return true
	}
	return false
}
