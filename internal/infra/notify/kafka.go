// Package notify publishes booking events after commit. Publishing is
// fire-and-forget: a broker failure is logged and swallowed, it never turns a
// committed booking into an error response.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"office-booking/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

const (
	EventVisitsBooked       = "visits_booked"
	EventVisitStatusChanged = "visit_status_changed"
	EventReservationCreated = "room_reservation_created"
	EventReservationChanged = "room_reservation_status_changed"
)

type Event struct {
	Kind       string          `json:"kind"`
	OfficeID   string          `json:"officeId"`
	UserID     string          `json:"userId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	if cfg.Disabled {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
	return &KafkaNotifier{writer: writer}
}

// Publish keys messages by office so events for one office stay ordered
// within a partition. A nil notifier drops everything silently (tests,
// brokerless deployments).
func (n *KafkaNotifier) Publish(ctx context.Context, event Event) {
	if n == nil {
		return
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode booking event", "kind", event.Kind, "error", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.OfficeID),
		Value: value,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		slog.Warn("failed to publish booking event", "kind", event.Kind, "office_id", event.OfficeID, "error", err)
	}
}

func (n *KafkaNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.writer.Close()
}
