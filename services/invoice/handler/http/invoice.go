package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/middleware"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/utils"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice"
)

// InvoiceHandler handles HTTP requests for invoice operations
type InvoiceHandler struct {
	invoiceUC invoice.InvoiceUseCase
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceUC invoice.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// RegisterRoutes registers the invoice routes
func (h *InvoiceHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	g := e.Group("/api/v1/invoices")
	g.Use(middleware.JWTAuthMiddleware(cfg.JWT))

	g.GET("/:id", h.GetInvoice)
	g.GET("/booking/:bookingId", h.GetByBooking)
	g.POST("/booking/:bookingId", h.IssueForBooking, middleware.RequireRole(models.RoleAdmin))
}

// GetInvoice fetches one invoice
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid invoice ID")
	}

	inv, err := h.invoiceUC.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invoice retrieved", inv)
}

// GetByBooking fetches the invoice issued for a booking
func (h *InvoiceHandler) GetByBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	inv, err := h.invoiceUC.GetByBookingID(c.Request().Context(), bookingID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invoice retrieved", inv)
}

// IssueForBooking issues the invoice manually, normally the completion
// event does this
func (h *InvoiceHandler) IssueForBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	inv, err := h.invoiceUC.IssueForBooking(c.Request().Context(), bookingID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Invoice issued", inv)
}

func (h *InvoiceHandler) mapError(c echo.Context, err error) error {
	middleware.NoticeError(c, err)

	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound), errors.Is(err, booking.ErrBookingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, invoice.ErrBookingNotCompleted):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}
