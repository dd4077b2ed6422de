package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MenuItemsChannel is notified with the menu item id on every change of menu_items.
const MenuItemsChannel = "menu_items_changed"

const listenerPingInterval = 90 * time.Second

// CatalogInvalidator drops cached catalog entries.
type CatalogInvalidator interface {
	Invalidate(id uuid.UUID)
	Purge()
}

type notificationSource interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// CatalogListener evicts cached menu items on Postgres notifications.
type CatalogListener struct {
	logger *slog.Logger
	source notificationSource
	target CatalogInvalidator

	pingInterval time.Duration
}

func NewCatalogListener(logger *slog.Logger, cfg config.Postgres, target CatalogInvalidator) *CatalogListener {
	logger = logger.With(slog.String("component", "catalog_listener"))
	source := pq.NewListener(DSN(cfg), time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("listener connection event", slog.Int("event", int(ev)), slog.Any("error", err))
		}
	})
	return newCatalogListener(logger, source, target)
}

func newCatalogListener(logger *slog.Logger, source notificationSource, target CatalogInvalidator) *CatalogListener {
	return &CatalogListener{
		logger:       logger,
		source:       source,
		target:       target,
		pingInterval: listenerPingInterval,
	}
}

// Start subscribes to MenuItemsChannel and handles notifications until ctx is done.
func (l *CatalogListener) Start(ctx context.Context) error {
	if err := l.source.Listen(MenuItemsChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", MenuItemsChannel, err)
	}
	// изменения до подписки не видны
	l.target.Purge()

	go l.run(ctx)
	return nil
}

func (l *CatalogListener) run(ctx context.Context) {
	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	notifications := l.source.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			l.handle(n)
		case <-ticker.C:
			if err := l.source.Ping(); err != nil {
				l.logger.Warn("listener ping failed", slog.Any("error", err))
			}
		}
	}
}

// handle evicts the notified menu item. A nil notification follows a reconnect,
// notifications may have been lost, so the whole cache is dropped.
func (l *CatalogListener) handle(n *pq.Notification) {
	if n == nil {
		l.logger.Info("listener reconnected, purging catalog cache")
		l.target.Purge()
		return
	}

	id, err := uuid.Parse(n.Extra)
	if err != nil {
		l.logger.Warn("unexpected notification payload", slog.String("payload", n.Extra))
		l.target.Purge()
		return
	}
	l.target.Invalidate(id)
}

func (l *CatalogListener) Close() error {
	return l.source.Close()
}
