package fare

import "errors"

var (
	// ErrInvalidFare means the final amount went negative and the
	// computation cannot be settled
	ErrInvalidFare = errors.New("final amount is negative")

	// ErrAmbiguousTaxSelection means both tax regimes were selected at once
	ErrAmbiguousTaxSelection = errors.New("both tax regimes selected")

	// ErrDuplicateChargeLabel means an ad hoc charge reused a fixed label
	ErrDuplicateChargeLabel = errors.New("charge label already in use")
)

// Warning is a non-fatal condition surfaced alongside a computation
type Warning string

const (
	// WarnDiscountLocked means inputs changed while the discount was
	// locked, so the discount was not recomputed
	WarnDiscountLocked Warning = "discount is locked; recomputation skipped"

	// WarnNegativeFinal means the charges produced a negative final amount
	WarnNegativeFinal Warning = "final amount is negative"
)
