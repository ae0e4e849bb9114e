package gateway

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/nsq"
)

// InvoiceGW publishes invoice lifecycle events to NSQ
type InvoiceGW struct {
	producer *nsq.Producer
}

// NewInvoiceGW creates a new invoice gateway
func NewInvoiceGW(producer *nsq.Producer) *InvoiceGW {
	return &InvoiceGW{producer: producer}
}

// PublishInvoiceIssued publishes an invoice.issued event
func (g *InvoiceGW) PublishInvoiceIssued(_ context.Context, event *models.InvoiceEvent) error {
	return g.producer.Publish(constants.TopicInvoiceIssued, event)
}
