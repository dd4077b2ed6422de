package publisher

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
)

// noopPublisher drops events. Used with EVENTS_DRIVER=none.
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *noopPublisher {
	return &noopPublisher{logger: logger.With(slog.String("publisher", "noop"))}
}

func (p *noopPublisher) Publish(ctx context.Context, events []entities.OrderEvent) error {
	p.logger.DebugContext(ctx, "events dropped", slog.Int("count", len(events)))
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
