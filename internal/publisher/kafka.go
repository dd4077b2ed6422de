package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

// NewKafkaPublisher writes order events to cfg.EventsTopic keyed by order id,
// so that events of one order stay in one partition.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	})
}

func newKafkaPublisher(logger *slog.Logger, w messageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: w,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, events []entities.OrderEvent) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.EventID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.EventType)},
				{Key: "event_id", Value: []byte(e.EventID.String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	p.logger.DebugContext(ctx, "events published", slog.Int("count", len(msgs)))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
