package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/middleware"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/utils"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUseCase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// Quote computes a financial preview without persisting
func (h *BookingHandler) Quote(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	quote, err := h.bookingUC.Quote(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote computed", quote)
}

// CreateBooking prices and persists a new booking
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	b, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}

	middleware.SetBookingID(c, b.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", b)
}

// UpdateBooking reprices and rewrites an existing booking
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	b, err := h.bookingUC.UpdateBooking(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated", b)
}

// GetBooking fetches one booking
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", b)
}

// ListBookings fetches bookings with optional status filter and paging
func (h *BookingHandler) ListBookings(c echo.Context) error {
	status := c.QueryParam("status")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), status, limit, offset)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

type advanceRequest struct {
	Amount float64 `json:"amount"`
}

// RecordAdvance registers an advance payment on the booking
func (h *BookingHandler) RecordAdvance(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req advanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	b, err := h.bookingUC.RecordAdvance(c.Request().Context(), id, req.Amount)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Advance recorded", b)
}

// CompleteBooking marks the trip finished
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.CompleteBooking(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed", b)
}

// CancelBooking marks the booking cancelled
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", b)
}

func (h *BookingHandler) mapError(c echo.Context, err error) error {
	middleware.NoticeError(c, err)

	switch {
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrOfferNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, booking.ErrTariffNotFound),
		errors.Is(err, booking.ErrAdvanceExceedsFinal),
		errors.Is(err, booking.ErrBookingNotEditable),
		errors.Is(err, fare.ErrInvalidFare),
		errors.Is(err, fare.ErrAmbiguousTaxSelection),
		errors.Is(err, fare.ErrDuplicateChargeLabel):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}
