package http

import (
	"github.com/labstack/echo/v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/middleware"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// RegisterRoutes registers the booking routes. Dashboard routes need a
// JWT; the vendor portal posts bookings with its API key instead.
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	g := e.Group("/api/v1/bookings")
	g.Use(middleware.JWTAuthMiddleware(cfg.JWT))

	g.POST("/quote", h.Quote)
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.POST("/:id/advance", h.RecordAdvance)
	g.POST("/:id/complete", h.CompleteBooking, middleware.RequireRole(models.RoleAdmin))
	g.POST("/:id/cancel", h.CancelBooking)

	vendor := e.Group("/api/v1/vendor/bookings")
	vendor.Use(middleware.ValidateAPIKey(cfg.APIKey.VendorPortal))

	vendor.POST("/quote", h.Quote)
	vendor.POST("", h.CreateBooking)
}
