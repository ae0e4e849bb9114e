package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// BookingUseCase defines the booking business operations
type BookingUseCase interface {
	Quote(ctx context.Context, req *models.BookingRequest) (*models.BookingQuote, error)
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req *models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, status string, limit, offset int) ([]*models.Booking, error)
	RecordAdvance(ctx context.Context, id uuid.UUID, amount float64) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
