package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*models.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return booking.ErrBookingNotFound
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, status string, limit, offset int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if status == "" || string(b.Status) == status {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeReferenceRepo struct {
	tariff *models.Tariff
	offers []models.Offer
}

func (f *fakeReferenceRepo) GetTariff(_ context.Context, vehicleType, serviceType string) (*models.Tariff, error) {
	if f.tariff == nil {
		return nil, booking.ErrTariffNotFound
	}
	return f.tariff, nil
}

func (f *fakeReferenceRepo) GetOffer(_ context.Context, id uuid.UUID) (*models.Offer, error) {
	for i := range f.offers {
		if f.offers[i].ID == id {
			return &f.offers[i], nil
		}
	}
	return nil, booking.ErrOfferNotFound
}

func (f *fakeReferenceRepo) GetActiveOffers(_ context.Context) ([]models.Offer, error) {
	var active []models.Offer
	for _, o := range f.offers {
		if o.Active {
			active = append(active, o)
		}
	}
	return active, nil
}

type fakeRouteProvider struct {
	distanceKm  float64
	durationMin float64
}

func (f *fakeRouteProvider) Legs(_ context.Context, waypoints []fare.Waypoint) ([]fare.LegDistance, error) {
	var legs []fare.LegDistance
	for i := 0; i < len(waypoints)-1; i++ {
		legs = append(legs, fare.LegDistance{
			FromIndex:   i,
			ToIndex:     i + 1,
			DistanceKm:  f.distanceKm,
			DurationMin: f.durationMin,
		})
	}
	return legs, nil
}

type fakeBookingGW struct {
	created   []*models.BookingEvent
	updated   []*models.BookingEvent
	completed []*models.BookingEvent
}

func (f *fakeBookingGW) PublishBookingCreated(_ context.Context, e *models.BookingEvent) error {
	f.created = append(f.created, e)
	return nil
}

func (f *fakeBookingGW) PublishBookingUpdated(_ context.Context, e *models.BookingEvent) error {
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakeBookingGW) PublishBookingCompleted(_ context.Context, e *models.BookingEvent) error {
	f.completed = append(f.completed, e)
	return nil
}

func testConfig() *models.Config {
	return &models.Config{
		Tax: models.TaxConfig{CGSTPercent: 2.5, SGSTPercent: 2.5, IGSTPercent: 5},
	}
}

func testRequest() *models.BookingRequest {
	return &models.BookingRequest{
		Source:          models.BookingSourceAdmin,
		CustomerName:    "Test Customer",
		CustomerMobile:  "9876543210",
		ServiceType:     string(fare.ServiceOneWay),
		PickupAddress:   "Chennai",
		PickupLatitude:  13.0827,
		PickupLongitude: 80.2707,
		DropAddress:     "Pondicherry",
		DropLatitude:    11.9416,
		DropLongitude:   79.8083,
		PickupAt:        time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		VehicleType:     "Sedan",
	}
}

func newTestUC(repo *fakeBookingRepo, ref *fakeReferenceRepo, gw *fakeBookingGW) booking.BookingUseCase {
	return NewBookingUC(testConfig(), repo, ref, &fakeRouteProvider{distanceKm: 100, durationMin: 150}, gw)
}

func TestQuoteComputesFinancials(t *testing.T) {
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(newFakeBookingRepo(), ref, &fakeBookingGW{})

	quote, err := uc.Quote(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.DistanceKm)
	assert.Equal(t, 1000.0, quote.BaseFare)
	assert.Equal(t, 1000.0, quote.FinalAmount)
	assert.Equal(t, string(fare.PaymentUnpaid), quote.PaymentStatus)
}

func TestQuoteNoTariff(t *testing.T) {
	uc := newTestUC(newFakeBookingRepo(), &fakeReferenceRepo{}, &fakeBookingGW{})

	_, err := uc.Quote(context.Background(), testRequest())

	assert.ErrorIs(t, err, booking.ErrTariffNotFound)
}

func TestQuoteAppliesActiveOffer(t *testing.T) {
	ref := &fakeReferenceRepo{
		tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true},
		offers: []models.Offer{
			{ID: uuid.New(), Type: string(fare.OfferPercentage), Value: 10, Category: fare.OfferCategoryAll, Active: true},
		},
	}
	uc := newTestUC(newFakeBookingRepo(), ref, &fakeBookingGW{})

	quote, err := uc.Quote(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.DiscountAmount)
	assert.Equal(t, 900.0, quote.FinalAmount)
}

func TestQuoteLockedDiscountWarns(t *testing.T) {
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(newFakeBookingRepo(), ref, &fakeBookingGW{})

	req := testRequest()
	req.DiscountLocked = true
	req.DiscountAmount = 50

	quote, err := uc.Quote(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.DiscountAmount)
	assert.Contains(t, quote.Warnings, string(fare.WarnDiscountLocked))
}

func TestCreateBookingPersistsAndPublishes(t *testing.T) {
	repo := newFakeBookingRepo()
	gw := &fakeBookingGW{}
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, gw)

	b, err := uc.CreateBooking(context.Background(), testRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, 1000.0, b.FinalAmount)
	assert.Len(t, gw.created, 1)
	assert.Contains(t, repo.bookings, b.ID)
}

func TestCreateBookingWebsiteSourceIsEnquiry(t *testing.T) {
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(newFakeBookingRepo(), ref, &fakeBookingGW{})

	req := testRequest()
	req.Source = models.BookingSourceWebsite

	b, err := uc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusEnquiry, b.Status)
}

func TestCreateBookingRejectsExcessAdvance(t *testing.T) {
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(newFakeBookingRepo(), ref, &fakeBookingGW{})

	req := testRequest()
	req.AdvanceAmount = 5000

	_, err := uc.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, booking.ErrAdvanceExceedsFinal)
}

func TestUpdateBookingReprices(t *testing.T) {
	repo := newFakeBookingRepo()
	gw := &fakeBookingGW{}
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, gw)

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	req := testRequest()
	req.DriverAllowance = 300

	updated, err := uc.UpdateBooking(context.Background(), created.ID, req)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1300.0, updated.FinalAmount)
	assert.Len(t, gw.updated, 1)
}

func TestUpdateBookingCompletedNotEditable(t *testing.T) {
	repo := newFakeBookingRepo()
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, &fakeBookingGW{})

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	_, err = uc.CompleteBooking(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = uc.UpdateBooking(context.Background(), created.ID, testRequest())
	assert.ErrorIs(t, err, booking.ErrBookingNotEditable)
}

func TestRecordAdvanceDerivesPaymentState(t *testing.T) {
	repo := newFakeBookingRepo()
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, &fakeBookingGW{})

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	b, err := uc.RecordAdvance(context.Background(), created.ID, 400)

	require.NoError(t, err)
	assert.Equal(t, string(fare.PaymentPartialPaid), b.PaymentStatus)
	assert.Equal(t, 600.0, b.RemainingAmount)
}

func TestRecordAdvanceExceedingFinalRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, &fakeBookingGW{})

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	_, err = uc.RecordAdvance(context.Background(), created.ID, created.FinalAmount+1)

	assert.ErrorIs(t, err, booking.ErrAdvanceExceedsFinal)
}

func TestCompleteBookingPublishesCompletion(t *testing.T) {
	repo := newFakeBookingRepo()
	gw := &fakeBookingGW{}
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, gw)

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	b, err := uc.CompleteBooking(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, b.Status)
	require.Len(t, gw.completed, 1)
	assert.Equal(t, created.ID, gw.completed[0].BookingID)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	ref := &fakeReferenceRepo{tariff: &models.Tariff{ID: uuid.New(), RatePerKm: 10, Active: true}}
	uc := newTestUC(repo, ref, &fakeBookingGW{})

	created, err := uc.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)

	_, err = uc.CompleteBooking(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = uc.CancelBooking(context.Background(), created.ID)
	assert.ErrorIs(t, err, booking.ErrBookingNotEditable)
}
