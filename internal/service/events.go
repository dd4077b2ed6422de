package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
)

// eventDispatcher publishes committed transitions. Publishing is a
// notification: failures are logged and counted, never returned.
type eventDispatcher struct {
	logger    *slog.Logger
	publisher EventPublisher
	timeout   time.Duration
}

func newEventDispatcher(logger *slog.Logger, publisher EventPublisher, timeout time.Duration) *eventDispatcher {
	return &eventDispatcher{
		logger:    logger,
		publisher: publisher,
		timeout:   timeout,
	}
}

func (d *eventDispatcher) Dispatch(ctx context.Context, o *entities.Order, entries []entities.AuditEntry) {
	if d.publisher == nil || len(entries) == 0 {
		return
	}

	events := make([]entities.OrderEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, entities.NewOrderEvent(o, e))
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, events); err != nil {
		eventsFailed.Add(float64(len(events)))
		d.logger.ErrorContext(ctx, "failed to publish order events",
			slog.String("order_id", o.ID.String()),
			slog.Int("count", len(events)),
			slog.Any("error", err),
		)
		return
	}
	eventsPublished.Add(float64(len(events)))
}
