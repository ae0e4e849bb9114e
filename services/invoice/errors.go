package invoice

import "errors"

var (
	// ErrInvoiceNotFound means no invoice exists for the given ID
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrBookingNotCompleted means invoices are only issued for
	// completed bookings
	ErrBookingNotCompleted = errors.New("booking is not completed")
)
