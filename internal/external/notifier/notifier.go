package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/kafka"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingStarted   = "booking.started"
	EventBookingCompleted = "booking.completed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingExtended  = "booking.extended"
	EventManualAssignment = "booking.assignment.manual"
)

// Event is one booking lifecycle notification published to Kafka.
type Event struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	WorkerID   string `json:"worker_id,omitempty"`
	Status     string `json:"status,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// Service publishes booking lifecycle events fire-and-forget. Delivery is
// the notification platform's problem; a publish failure is logged and must
// never abort the transition that produced it.
type Service interface {
	Publish(ctx context.Context, event Event)
}

type serviceImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otl otel.Otel) Service {
	return &serviceImpl{
		client: client,
		topic:  cfg.Kafka.Topics.BookingEvents,
		otel:   otl,
	}
}

func (s *serviceImpl) Publish(ctx context.Context, event Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notifier.Publish")
	defer scope.End()

	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := s.client.SendMessages(ctx, s.topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", event.Type).Str("bookingId", event.BookingID).Msg("failed to publish booking event")
	}
}
