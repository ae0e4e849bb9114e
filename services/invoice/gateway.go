package invoice

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// InvoiceGW publishes invoice lifecycle events
type InvoiceGW interface {
	PublishInvoiceIssued(ctx context.Context, event *models.InvoiceEvent) error
}
