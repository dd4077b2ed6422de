package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitPublisher struct {
	logger   *slog.Logger
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// NewRabbitPublisher declares a durable topic exchange and publishes every
// event with routing key "order.<action>".
func NewRabbitPublisher(logger *slog.Logger, cfg config.RabbitMQ) (*rabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	p := newRabbitPublisher(logger, ch, cfg.Exchange)
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(logger *slog.Logger, ch amqpChannel, exchange string) *rabbitPublisher {
	return &rabbitPublisher{
		logger:   logger.With(slog.String("publisher", "rabbitmq")),
		channel:  ch,
		exchange: exchange,
	}
}

func RoutingKey(action entities.AuditAction) string {
	return "order." + strings.ToLower(string(action))
}

func (p *rabbitPublisher) Publish(ctx context.Context, events []entities.OrderEvent) error {
	for _, e := range events {
		body, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.EventID, err)
		}

		err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(e.EventType), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    e.EventID.String(),
			Type:         string(e.EventType),
			Timestamp:    e.OccurredAt,
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("failed to publish event %s: %w", e.EventID, err)
		}
	}
	p.logger.DebugContext(ctx, "events published", slog.Int("count", len(events)))
	return nil
}

func (p *rabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
