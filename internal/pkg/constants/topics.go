package constants

// NSQ topics
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingUpdated   = "booking.updated"
	TopicBookingCompleted = "booking.completed"
	TopicInvoiceIssued    = "invoice.issued"
)

// NSQ channels
const (
	ChannelInvoiceWorker = "invoice-worker"
)
