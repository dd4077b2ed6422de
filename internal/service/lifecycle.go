package service

import (
	"context"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancelOrder cancels a draft or serving order and its unfinished items.
func (s *orderService) CancelOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (bool, error) {
	_, err := s.mutate(ctx, actor, orderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		if err := o.Cancel(reason, now); err != nil {
			return err
		}
		return s.audit.Record(o, actor, entities.AuditCancel, strings.TrimSpace(reason), map[string]any{
			"status": o.Status,
			"total":  o.TotalAmount,
		}, now)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

type CompleteResult struct {
	OrderID       uuid.UUID
	Total         decimal.Decimal
	Status        entities.OrderStatus
	TableReleased bool
}

func (s *orderService) CompleteOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (CompleteResult, error) {
	o, err := s.mutate(ctx, actor, orderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		if err := o.Complete(now); err != nil {
			return err
		}
		return s.audit.Record(o, actor, entities.AuditComplete, "", map[string]any{
			"status":   o.Status,
			"total":    o.TotalAmount,
			"table_id": o.TableID,
		}, now)
	})
	if err != nil {
		return CompleteResult{}, err
	}
	return CompleteResult{
		OrderID:       o.ID,
		Total:         o.TotalAmount,
		Status:        o.Status,
		TableReleased: o.Type == entities.OrderTypeDineIn && o.TableID == nil,
	}, nil
}
