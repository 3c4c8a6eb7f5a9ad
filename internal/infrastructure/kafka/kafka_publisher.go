package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Sidiqjon/debt-manager/pkg/events"
	pkgkafka "github.com/Sidiqjon/debt-manager/pkg/kafka"
)

// EventPublisher implements port.EventPublisher by writing domain events to
// a Kafka topic, keyed by aggregate ID so events for one debt stay ordered.
type EventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher targeting one topic.
func NewEventPublisher(producer *pkgkafka.Producer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish serialises and sends the events.
func (p *EventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		msg := pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID(),
			},
		}
		if err := p.producer.Publish(ctx, p.topic, msg); err != nil {
			return fmt.Errorf("publish event %s: %w", evt.EventType(), err)
		}

		p.logger.Debug("published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic,
		)
	}
	return nil
}
