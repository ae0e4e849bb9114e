package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
)

type fakeBookingUC struct {
	quote      *models.BookingQuote
	booking    *models.Booking
	err        error
	lastAmount float64
}

func (f *fakeBookingUC) Quote(_ context.Context, _ *models.BookingRequest) (*models.BookingQuote, error) {
	return f.quote, f.err
}

func (f *fakeBookingUC) CreateBooking(_ context.Context, _ *models.BookingRequest) (*models.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingUC) UpdateBooking(_ context.Context, _ uuid.UUID, _ *models.BookingRequest) (*models.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingUC) GetBooking(_ context.Context, _ uuid.UUID) (*models.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingUC) ListBookings(_ context.Context, _ string, _, _ int) ([]*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Booking{f.booking}, nil
}

func (f *fakeBookingUC) RecordAdvance(_ context.Context, _ uuid.UUID, amount float64) (*models.Booking, error) {
	f.lastAmount = amount
	return f.booking, f.err
}

func (f *fakeBookingUC) CompleteBooking(_ context.Context, _ uuid.UUID) (*models.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingUC) CancelBooking(_ context.Context, _ uuid.UUID) (*models.Booking, error) {
	return f.booking, f.err
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestQuoteHandlerSuccess(t *testing.T) {
	uc := &fakeBookingUC{quote: &models.BookingQuote{BaseFare: 1000, FinalAmount: 1050}}
	h := NewBookingHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/api/v1/bookings/quote", `{"service_type":"One Way"}`)

	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    models.BookingQuote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1050.0, resp.Data.FinalAmount)
}

func TestQuoteHandlerTariffNotFound(t *testing.T) {
	uc := &fakeBookingUC{err: booking.ErrTariffNotFound}
	h := NewBookingHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/api/v1/bookings/quote", `{}`)

	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	uc := &fakeBookingUC{booking: &models.Booking{ID: uuid.New(), FinalAmount: 1050}}
	h := NewBookingHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/api/v1/bookings", `{"service_type":"One Way"}`)

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateBookingHandlerExcessAdvance(t *testing.T) {
	uc := &fakeBookingUC{err: booking.ErrAdvanceExceedsFinal}
	h := NewBookingHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/api/v1/bookings", `{"advance_amount":9999}`)

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingHandlerInvalidID(t *testing.T) {
	h := NewBookingHandler(&fakeBookingUC{})

	c, rec := newContext(t, http.MethodGet, "/api/v1/bookings/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	uc := &fakeBookingUC{err: booking.ErrBookingNotFound}
	h := NewBookingHandler(uc)

	id := uuid.New().String()
	c, rec := newContext(t, http.MethodGet, "/api/v1/bookings/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.GetBooking(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordAdvanceHandlerPassesAmount(t *testing.T) {
	uc := &fakeBookingUC{booking: &models.Booking{ID: uuid.New()}}
	h := NewBookingHandler(uc)

	id := uuid.New().String()
	c, rec := newContext(t, http.MethodPost, "/api/v1/bookings/"+id+"/advance", `{"amount":400}`)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.RecordAdvance(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 400.0, uc.lastAmount)
}
