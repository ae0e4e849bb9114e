package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// BookingRepo defines booking persistence operations
type BookingRepo interface {
	Create(ctx context.Context, b *models.Booking) error
	Update(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.Booking, error)
}

// ReferenceRepo provides read-only tariff and offer reference data
type ReferenceRepo interface {
	GetTariff(ctx context.Context, vehicleType, serviceType string) (*models.Tariff, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	GetActiveOffers(ctx context.Context) ([]models.Offer, error)
}
