package gateway

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/nsq"
)

// BookingGW publishes booking lifecycle events to NSQ
type BookingGW struct {
	producer *nsq.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(producer *nsq.Producer) *BookingGW {
	return &BookingGW{producer: producer}
}

// PublishBookingCreated publishes a booking.created event
func (g *BookingGW) PublishBookingCreated(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.TopicBookingCreated, event)
}

// PublishBookingUpdated publishes a booking.updated event
func (g *BookingGW) PublishBookingUpdated(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.TopicBookingUpdated, event)
}

// PublishBookingCompleted publishes a booking.completed event
func (g *BookingGW) PublishBookingCompleted(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.TopicBookingCompleted, event)
}
