package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice"
)

// InvoiceUC implements the invoice.InvoiceUseCase interface
type InvoiceUC struct {
	invoiceRepo invoice.InvoiceRepo
	bookingRepo booking.BookingRepo
	gw          invoice.InvoiceGW
}

// NewInvoiceUC creates a new invoice use case
func NewInvoiceUC(invoiceRepo invoice.InvoiceRepo, bookingRepo booking.BookingRepo, gw invoice.InvoiceGW) invoice.InvoiceUseCase {
	return &InvoiceUC{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
		gw:          gw,
	}
}

// IssueForBooking issues the invoice for a completed booking. The
// amounts are re-derived from the persisted snapshot with the discount
// treated as locked, so a stale quote can never leak into the invoice.
// Idempotent: a second call returns the existing invoice, the
// completion event may be redelivered.
func (uc *InvoiceUC) IssueForBooking(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error) {
	if existing, err := uc.invoiceRepo.GetByBookingID(ctx, bookingID); err == nil {
		return existing, nil
	} else if !errors.Is(err, invoice.ErrInvoiceNotFound) {
		return nil, err
	}

	b, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, invoice.ErrBookingNotCompleted
	}

	final, err := uc.rebuildFinal(b)
	if err != nil {
		return nil, err
	}

	state, err := fare.ReconcilePayment(final, b.AdvanceAmount)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		ID:              uuid.New(),
		BookingID:       b.ID,
		Charges:         b.Charges,
		Subtotal:        b.Subtotal,
		DiscountAmount:  b.DiscountAmount,
		FinalAmount:     final,
		AdvanceAmount:   b.AdvanceAmount,
		RemainingAmount: state.RemainingAmount,
		PaymentStatus:   string(state.Status),
		IssuedAt:        time.Now(),
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	uc.publishIssued(ctx, inv)
	return inv, nil
}

// GetInvoice fetches one invoice by ID
func (uc *InvoiceUC) GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// GetByBookingID fetches the invoice issued for a booking
func (uc *InvoiceUC) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error) {
	return uc.invoiceRepo.GetByBookingID(ctx, bookingID)
}

// rebuildFinal re-derives the final amount from the persisted charge
// map instead of trusting the stored total. The allowance line is part
// of the subtotal and the discount is subtracted, everything else adds.
func (uc *InvoiceUC) rebuildFinal(b *models.Booking) (float64, error) {
	var additions float64
	for label, amount := range b.Charges {
		switch label {
		case fare.ChargeLabelDriverAllowance, fare.ChargeLabelDiscount:
		default:
			additions += amount
		}
	}

	final := fare.Round2(b.Subtotal + additions - b.DiscountAmount)
	if final < 0 {
		return 0, fare.ErrInvalidFare
	}

	if final != b.FinalAmount {
		logger.Warn("Recomputed invoice total differs from booking snapshot",
			logger.String("booking_id", b.ID.String()),
			logger.Float64("stored", b.FinalAmount),
			logger.Float64("recomputed", final))
	}

	return final, nil
}

func (uc *InvoiceUC) publishIssued(ctx context.Context, inv *models.Invoice) {
	event := &models.InvoiceEvent{
		InvoiceID:       inv.ID,
		BookingID:       inv.BookingID,
		FinalAmount:     inv.FinalAmount,
		RemainingAmount: inv.RemainingAmount,
		PaymentStatus:   inv.PaymentStatus,
		Timestamp:       time.Now(),
	}

	if err := uc.gw.PublishInvoiceIssued(ctx, event); err != nil {
		logger.Warn("Failed to publish invoice event",
			logger.String("invoice_id", inv.ID.String()),
			logger.Err(err))
	}
}
