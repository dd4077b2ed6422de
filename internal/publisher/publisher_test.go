package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []published
	err       error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvents() []entities.OrderEvent {
	orderID := uuid.New()
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	return []entities.OrderEvent{
		{
			EventID:      uuid.New(),
			EventType:    entities.AuditCreateDraft,
			EventVersion: entities.EventVersion,
			OccurredAt:   at,
			Producer:     entities.EventProducer,
			OrderID:      orderID,
			OrderCode:    "ORD-20250314-0001",
			Status:       entities.OrderStatusDraft,
			Total:        decimal.Zero,
		},
		{
			EventID:      uuid.New(),
			EventType:    entities.AuditCancelItem,
			EventVersion: entities.EventVersion,
			OccurredAt:   at.Add(time.Minute),
			Producer:     entities.EventProducer,
			OrderID:      orderID,
			OrderCode:    "ORD-20250314-0001",
			Status:       entities.OrderStatusServing,
			Total:        decimal.RequireFromString("42.5"),
			Reason:       "guest changed mind",
		},
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(testLogger(), w)
	events := testEvents()

	require.NoError(t, p.Publish(context.Background(), events))
	require.Len(t, w.msgs, 2)

	for i, m := range w.msgs {
		assert.Equal(t, events[i].OrderID.String(), string(m.Key))
		assert.Equal(t, events[i].OccurredAt, m.Time)
		assert.Equal(t, string(events[i].EventType), string(m.Headers[0].Value))

		var got entities.OrderEvent
		require.NoError(t, json.Unmarshal(m.Value, &got))
		assert.Equal(t, events[i].EventID, got.EventID)
		assert.True(t, events[i].Total.Equal(got.Total))
	}

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := newKafkaPublisher(testLogger(), w)

	err := p.Publish(context.Background(), testEvents())
	assert.ErrorContains(t, err, "broker unavailable")
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newRabbitPublisher(testLogger(), ch, "orders")
	events := testEvents()

	require.NoError(t, p.Publish(context.Background(), events))
	require.Len(t, ch.published, 2)

	assert.Equal(t, "orders", ch.published[0].exchange)
	assert.Equal(t, "order.create_draft", ch.published[0].key)
	assert.Equal(t, "order.cancel_item", ch.published[1].key)
	assert.Equal(t, amqp.Persistent, ch.published[1].msg.DeliveryMode)
	assert.Equal(t, events[1].EventID.String(), ch.published[1].msg.MessageId)

	require.NoError(t, p.Close())
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := newRabbitPublisher(testLogger(), ch, "orders")

	err := p.Publish(context.Background(), testEvents())
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(testLogger())
	assert.NoError(t, p.Publish(context.Background(), testEvents()))
	assert.NoError(t, p.Close())
}
