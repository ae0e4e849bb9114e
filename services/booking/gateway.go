package booking

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

// RouteProvider resolves measured leg distances for an ordered
// waypoint sequence
type RouteProvider interface {
	Legs(ctx context.Context, waypoints []fare.Waypoint) ([]fare.LegDistance, error)
}

// BookingGW publishes booking lifecycle events
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error
	PublishBookingUpdated(ctx context.Context, event *models.BookingEvent) error
	PublishBookingCompleted(ctx context.Context, event *models.BookingEvent) error
}
