package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

// BookingUC implements the booking.BookingUseCase interface
type BookingUC struct {
	cfg         *models.Config
	bookingRepo booking.BookingRepo
	refRepo     booking.ReferenceRepo
	routes      booking.RouteProvider
	gw          booking.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo booking.BookingRepo,
	refRepo booking.ReferenceRepo,
	routes booking.RouteProvider,
	gw booking.BookingGW,
) booking.BookingUseCase {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		refRepo:     refRepo,
		routes:      routes,
		gw:          gw,
	}
}

// Quote computes the full financial preview for a request without
// persisting anything
func (uc *BookingUC) Quote(ctx context.Context, req *models.BookingRequest) (*models.BookingQuote, error) {
	out, _, err := uc.computeFinancials(ctx, req)
	if err != nil {
		return nil, err
	}
	return quoteFromOutput(out, req.AdvanceAmount), nil
}

// CreateBooking prices the request, persists the booking snapshot and
// publishes a created event
func (uc *BookingUC) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	out, tariff, err := uc.computeFinancials(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.AdvanceAmount > out.Ledger.FinalAmount {
		return nil, booking.ErrAdvanceExceedsFinal
	}

	now := time.Now()
	b := bookingFromRequest(req, out, tariff)
	b.ID = uuid.New()
	b.Status = models.BookingStatusConfirmed
	if req.Source == models.BookingSourceWebsite {
		b.Status = models.BookingStatusEnquiry
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := uc.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	uc.publish(ctx, b, uc.gw.PublishBookingCreated)
	return b, nil
}

// UpdateBooking reprices an editable booking from the new request and
// persists the recomputed snapshot
func (uc *BookingUC) UpdateBooking(ctx context.Context, id uuid.UUID, req *models.BookingRequest) (*models.Booking, error) {
	existing, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.BookingStatusCompleted || existing.Status == models.BookingStatusCancelled {
		return nil, booking.ErrBookingNotEditable
	}

	out, tariff, err := uc.computeFinancials(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.AdvanceAmount > out.Ledger.FinalAmount {
		return nil, booking.ErrAdvanceExceedsFinal
	}

	b := bookingFromRequest(req, out, tariff)
	b.ID = existing.ID
	b.Status = existing.Status
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now()

	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	uc.publish(ctx, b, uc.gw.PublishBookingUpdated)
	return b, nil
}

// GetBooking fetches one booking by ID
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetByID(ctx, id)
}

// ListBookings fetches bookings, optionally filtered by status
func (uc *BookingUC) ListBookings(ctx context.Context, status string, limit, offset int) ([]*models.Booking, error) {
	return uc.bookingRepo.List(ctx, status, limit, offset)
}

// RecordAdvance registers a new advance amount on the booking and
// re-derives the payment state
func (uc *BookingUC) RecordAdvance(ctx context.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amount < 0 || amount > b.FinalAmount {
		return nil, booking.ErrAdvanceExceedsFinal
	}

	state, err := fare.ReconcilePayment(b.FinalAmount, amount)
	if err != nil {
		return nil, err
	}

	b.AdvanceAmount = amount
	b.PaymentStatus = string(state.Status)
	b.RemainingAmount = state.RemainingAmount
	b.UpdatedAt = time.Now()

	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to record advance: %w", err)
	}

	uc.publish(ctx, b, uc.gw.PublishBookingUpdated)
	return b, nil
}

// CompleteBooking marks the trip finished and publishes the completion
// event that triggers invoice issuance
func (uc *BookingUC) CompleteBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, booking.ErrBookingNotEditable
	}

	b.Status = models.BookingStatusCompleted
	b.UpdatedAt = time.Now()

	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}

	uc.publish(ctx, b, uc.gw.PublishBookingCompleted)
	return b, nil
}

// CancelBooking marks the booking cancelled
func (uc *BookingUC) CancelBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCompleted {
		return nil, booking.ErrBookingNotEditable
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()

	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	uc.publish(ctx, b, uc.gw.PublishBookingUpdated)
	return b, nil
}

// computeFinancials assembles the engine input from the request and
// reference data and runs the pricing pipeline
func (uc *BookingUC) computeFinancials(ctx context.Context, req *models.BookingRequest) (*fare.Output, *models.Tariff, error) {
	tariff, err := uc.refRepo.GetTariff(ctx, req.VehicleType, req.ServiceType)
	if err != nil {
		return nil, nil, err
	}

	itinerary := itineraryFromRequest(req)

	var legs []fare.LegDistance
	if waypoints := itinerary.Waypoints(); len(waypoints) >= 2 {
		legs, err = uc.routes.Legs(ctx, waypoints)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve route legs: %w", err)
		}
	}

	discount, err := uc.discountState(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	var offers []fare.Offer
	if discount.Offer == nil && !discount.Locked {
		active, err := uc.refRepo.GetActiveOffers(ctx)
		if err != nil {
			logger.Warn("Failed to load active offers, pricing without discount",
				logger.Err(err))
		} else {
			offers = engineOffers(active)
		}
	}

	in := fare.Input{
		Itinerary:       itinerary,
		Legs:            legs,
		RatePerKm:       tariff.RatePerKm,
		DriverAllowance: req.DriverAllowance,
		TaxSelection:    taxSelection(req.TaxRegime),
		TaxRates: fare.TaxRates{
			CGSTPercent: uc.cfg.Tax.CGSTPercent,
			SGSTPercent: uc.cfg.Tax.SGSTPercent,
			IGSTPercent: uc.cfg.Tax.IGSTPercent,
		},
		Offers:        offers,
		Discount:      discount,
		AdHocCharges:  engineCharges(req.AdHocCharges),
		AdvanceAmount: req.AdvanceAmount,
	}

	out, err := fare.ComputeBookingFinancials(in)
	if err != nil {
		return nil, nil, err
	}
	return &out, tariff, nil
}

func (uc *BookingUC) discountState(ctx context.Context, req *models.BookingRequest) (fare.DiscountState, error) {
	if req.DiscountLocked {
		return fare.DiscountState{Locked: true, LockedAmount: req.DiscountAmount}, nil
	}

	if req.OfferID != nil {
		offer, err := uc.refRepo.GetOffer(ctx, *req.OfferID)
		if err != nil {
			return fare.DiscountState{}, err
		}
		engineOffer := engineOffer(*offer)
		return fare.DiscountState{Offer: &engineOffer}, nil
	}

	return fare.DiscountState{}, nil
}

func (uc *BookingUC) publish(ctx context.Context, b *models.Booking, fn func(context.Context, *models.BookingEvent) error) {
	event := &models.BookingEvent{
		BookingID:     b.ID,
		Source:        string(b.Source),
		ServiceType:   b.ServiceType,
		FinalAmount:   b.FinalAmount,
		AdvanceAmount: b.AdvanceAmount,
		PaymentStatus: b.PaymentStatus,
		Status:        string(b.Status),
		Timestamp:     time.Now(),
	}

	if err := fn(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
	}
}
