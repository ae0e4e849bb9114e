package booking

import "errors"

var (
	// ErrBookingNotFound means no booking exists for the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTariffNotFound means no active tariff covers the requested
	// vehicle and service type
	ErrTariffNotFound = errors.New("no tariff for vehicle and service type")

	// ErrOfferNotFound means the referenced offer does not exist
	ErrOfferNotFound = errors.New("offer not found")

	// ErrAdvanceExceedsFinal means the advance entry is larger than the
	// final amount and must be corrected before saving
	ErrAdvanceExceedsFinal = errors.New("advance amount exceeds final amount")

	// ErrBookingNotEditable means the booking is completed or cancelled
	ErrBookingNotEditable = errors.New("booking can no longer be edited")
)
