package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"time"

	"innkeep/config"
	"innkeep/infras/kafka"

	"github.com/rs/zerolog/log"
)

const (
	KindBookingCreated    = "booking.created"
	KindBookingCancelled  = "booking.cancelled"
	KindRoomStatusChanged = "room.status_changed"
	KindRoomBlocked       = "room.blocked"
	KindRoomUnblocked     = "room.unblocked"
)

type Event struct {
	Kind      string    `json:"kind"`
	RoomID    string    `json:"room_id"`
	BookingID string    `json:"booking_id,omitempty"`
	Reference string    `json:"reference,omitempty"`
	At        time.Time `json:"at"`
}

// Notifier publishes inventory change events. Publishing is best effort:
// implementations log failures and return them, but no caller treats a
// publish error as fatal to the write that triggered it.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

func New(cfg *config.Config, client kafka.Client) Notifier {
	if !cfg.Notifier.Enable {
		return &noopNotifier{}
	}

	return &kafkaNotifier{
		client: client,
		topic:  cfg.Notifier.Topic,
	}
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
}

func (n *kafkaNotifier) Publish(ctx context.Context, event Event) error {
	message := kafka.Message{
		Key:   event.RoomID,
		Value: event,
	}

	if err := n.client.SendMessages(ctx, n.topic, message); err != nil {
		log.Warn().Err(err).Str("kind", event.Kind).Str("roomId", event.RoomID).Msg("Failed to publish inventory event")

		return err
	}

	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) Publish(_ context.Context, _ Event) error {
	return nil
}
