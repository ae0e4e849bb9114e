package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// InvoiceRepo defines invoice persistence operations
type InvoiceRepo interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error)
}
