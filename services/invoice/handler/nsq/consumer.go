package nsq

import (
	"context"
	"errors"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/nsq"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice"
)

// CompletionConsumer issues invoices when bookings complete
type CompletionConsumer struct {
	invoiceUC invoice.InvoiceUseCase
	consumer  *nsq.Consumer
}

// NewCompletionConsumer creates the booking.completed consumer
func NewCompletionConsumer(invoiceUC invoice.InvoiceUseCase) (*CompletionConsumer, error) {
	c := &CompletionConsumer{invoiceUC: invoiceUC}

	consumer, err := nsq.NewConsumer(
		constants.TopicBookingCompleted,
		constants.ChannelInvoiceWorker,
		c.handleBookingCompleted,
	)
	if err != nil {
		return nil, err
	}

	c.consumer = consumer
	return c, nil
}

// Start connects the consumer to the NSQ lookupd instances
func (c *CompletionConsumer) Start(lookupdAddrs []string) error {
	return c.consumer.ConnectToLookupd(lookupdAddrs)
}

// Stop gracefully stops the consumer
func (c *CompletionConsumer) Stop() {
	c.consumer.Stop()
}

// handleBookingCompleted issues the invoice for a completed booking.
// Business rejections are swallowed so NSQ does not requeue them
// forever; only infrastructure failures requeue.
func (c *CompletionConsumer) handleBookingCompleted(message []byte) error {
	var event models.BookingEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		logger.Error("Failed to decode booking event", logger.Err(err))
		return nil
	}

	inv, err := c.invoiceUC.IssueForBooking(context.Background(), event.BookingID)
	if err != nil {
		if errors.Is(err, invoice.ErrBookingNotCompleted) {
			logger.Warn("Skipping invoice for non-completed booking",
				logger.String("booking_id", event.BookingID.String()))
			return nil
		}
		logger.Error("Failed to issue invoice",
			logger.String("booking_id", event.BookingID.String()),
			logger.Err(err))
		return err
	}

	logger.Info("Invoice issued",
		logger.String("invoice_id", inv.ID.String()),
		logger.String("booking_id", inv.BookingID.String()))
	return nil
}
