package fare

// ReconcilePayment derives the payment status and remaining balance
// from the two canonical amounts. Recomputed from scratch on every
// change, there is no transition history.
//
// The remaining amount is never negative: an excess advance settles
// the booking with zero remaining, it is not reflected as a refund.
func ReconcilePayment(finalAmount, advanceAmount float64) (PaymentState, error) {
	if finalAmount < 0 {
		return PaymentState{}, ErrInvalidFare
	}

	switch {
	case advanceAmount <= 0:
		return PaymentState{Status: PaymentUnpaid, RemainingAmount: finalAmount}, nil
	case advanceAmount >= finalAmount:
		return PaymentState{Status: PaymentPaid, RemainingAmount: 0}, nil
	default:
		return PaymentState{Status: PaymentPartialPaid, RemainingAmount: Round2(finalAmount - advanceAmount)}, nil
	}
}
