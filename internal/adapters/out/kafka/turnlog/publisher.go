// Package turnlog publishes turn outcome events to Kafka for offline
// monitoring. Events record which arm answered each turn and whether a
// fallback fired, so operators can tell "order not found" from "resolver
// down" without changing what the customer sees.
package turnlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"support/internal/core/ports"
	"support/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Publisher writes JSON-encoded turn events to a Kafka topic, keyed by
// session so one conversation lands on one partition in order.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a Publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "turn_log", "topic", topic),
	}
}

// PublishTurn serialises one turn event and writes it synchronously.
func (p *Publisher) PublishTurn(ctx context.Context, event ports.TurnEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errs.NewInfrastructureError("kafka", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "turn event publish failed",
			"session_id", event.SessionID,
			"error", err,
		)
		return errs.NewInfrastructureError("kafka", err)
	}

	p.logger.DebugContext(ctx, "turn event published",
		"session_id", event.SessionID,
		"source", event.Source,
	)
	return nil
}

// Close flushes pending writes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
