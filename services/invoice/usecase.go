package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// InvoiceUseCase defines the invoice business operations
type InvoiceUseCase interface {
	IssueForBooking(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error)
}
