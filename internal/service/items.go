package service

import (
	"context"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
)

// ItemInput is one requested line. ItemID is set only when it refers to an existing line.
type ItemInput struct {
	ItemID     *uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
	Note       string
	Options    []entities.OptionSelection
}

type AddItemInput struct {
	OrderID uuid.UUID
	Item    ItemInput
	// Reason is required for merges into a serving order when Options.MergeReasonRequired is set.
	Reason string
}

// AddItem merges the requested line into a matching Preparing line or appends it.
func (s *orderService) AddItem(ctx context.Context, actor entities.Actor, in AddItemInput) (entities.OrderItem, error) {
	var line entities.OrderItem
	_, err := s.mutate(ctx, actor, in.OrderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		if err := o.EnsureOpen(); err != nil {
			return err
		}
		item, err := s.buildItem(ctx, o, in.Item, now)
		if err != nil {
			return err
		}

		signature := entities.SelectionSignature(item.Selections())
		target := o.FindMergeTarget(item.MenuItemID, item.Note, signature)
		if target != nil && s.opts.MergeReasonRequired &&
			o.Status == entities.OrderStatusServing && strings.TrimSpace(in.Reason) == "" {
			return entities.ErrReasonRequired
		}

		var merged bool
		line, merged, err = o.MergeOrAppend(item, now)
		if err != nil {
			return err
		}
		return s.audit.Record(o, actor, entities.AuditAddItem, strings.TrimSpace(in.Reason), map[string]any{
			"item_id":       line.ID,
			"menu_item_id":  line.MenuItemID,
			"quantity":      item.Quantity,
			"line_quantity": line.Quantity,
			"merged":        merged,
			"total":         o.TotalAmount,
		}, now)
	})
	if err != nil {
		return entities.OrderItem{}, err
	}
	return line, nil
}

type UpdateItemsInput struct {
	OrderID uuid.UUID
	// Items is the full desired set of lines. Existing lines missing from it are cancelled.
	Items  []ItemInput
	Reason string
}

func (s *orderService) UpdateItems(ctx context.Context, actor entities.Actor, in UpdateItemsInput) ([]entities.OrderItem, error) {
	if len(in.Items) == 0 {
		return nil, entities.ErrNoItems
	}

	o, err := s.mutate(ctx, actor, in.OrderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		if err := o.EnsureOpen(); err != nil {
			return err
		}

		// Сначала проверяем все строки, заказ меняется только если валидны все
		built := make([]entities.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			if line.ItemID != nil {
				if err := o.CheckItemUpdate(*line.ItemID, line.Quantity, strings.TrimSpace(line.Note)); err != nil {
					return err
				}
				continue
			}
			item, err := s.buildItem(ctx, o, line, now)
			if err != nil {
				return err
			}
			built = append(built, item)
		}

		keep := make(map[uuid.UUID]bool, len(in.Items))
		var updated, created []uuid.UUID
		for _, line := range in.Items {
			if line.ItemID == nil {
				continue
			}
			if err := o.UpdateItem(*line.ItemID, line.Quantity, strings.TrimSpace(line.Note), now); err != nil {
				return err
			}
			keep[*line.ItemID] = true
			updated = append(updated, *line.ItemID)
		}
		for _, item := range built {
			if err := o.AppendItem(item, now); err != nil {
				return err
			}
			keep[item.ID] = true
			created = append(created, item.ID)
		}

		reason := strings.TrimSpace(in.Reason)
		cancelled, err := o.CancelItemsExcept(keep, reason, now)
		if err != nil {
			return err
		}
		return s.audit.Record(o, actor, entities.AuditUpdateItems, reason, map[string]any{
			"updated":   updated,
			"created":   created,
			"cancelled": cancelled,
			"total":     o.TotalAmount,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return o.Items, nil
}

// CancelItem cancels one line. It returns false without error when the line
// is already finished and nothing changed.
func (s *orderService) CancelItem(ctx context.Context, actor entities.Actor, orderID, itemID uuid.UUID, reason string) (bool, error) {
	var changed bool
	_, err := s.mutate(ctx, actor, orderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		reason = strings.TrimSpace(reason)
		ok, err := o.CancelItem(itemID, reason, now)
		if err != nil || !ok {
			return err
		}
		changed = true
		return s.audit.Record(o, actor, entities.AuditCancelItem, reason, map[string]any{
			"item_id": itemID,
			"total":   o.TotalAmount,
		}, now)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

type ItemStatusInput struct {
	OrderID uuid.UUID
	ItemID  uuid.UUID
	Status  entities.ItemStatus
	Reason  string
}

// UpdateItemStatus applies a kitchen status change to one line.
func (s *orderService) UpdateItemStatus(ctx context.Context, actor entities.Actor, in ItemStatusInput) (entities.OrderItem, error) {
	if _, err := entities.ParseItemStatus(string(in.Status)); err != nil {
		return entities.OrderItem{}, err
	}

	var line entities.OrderItem
	_, err := s.mutate(ctx, actor, in.OrderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		it, err := o.Item(in.ItemID)
		if err != nil {
			return err
		}
		from := it.Status

		if err := o.UpdateItemStatus(in.ItemID, in.Status, now); err != nil {
			return err
		}
		line = *it

		return s.audit.Record(o, actor, entities.AuditItemStatus, strings.TrimSpace(in.Reason), map[string]any{
			"item_id":        in.ItemID,
			"from":           from,
			"to":             in.Status,
			"total":          o.TotalAmount,
			"table_released": o.Type == entities.OrderTypeDineIn && o.TableID == nil,
		}, now)
	})
	if err != nil {
		return entities.OrderItem{}, err
	}
	return line, nil
}

// buildItem resolves the catalog entries of a requested line and snapshots them.
func (s *orderService) buildItem(ctx context.Context, o *entities.Order, in ItemInput, now time.Time) (entities.OrderItem, error) {
	if in.Quantity <= 0 {
		return entities.OrderItem{}, entities.ErrInvalidQuantity
	}

	menu, err := s.catalog.GetMenuItem(ctx, in.MenuItemID)
	if err != nil {
		return entities.OrderItem{}, err
	}

	var options map[uuid.UUID]entities.OptionItem
	if len(in.Options) > 0 {
		ids := make([]uuid.UUID, 0, len(in.Options))
		for _, sel := range in.Options {
			ids = append(ids, sel.OptionItemID)
		}
		options, err = s.catalog.GetOptionItems(ctx, menu.ID, ids)
		if err != nil {
			return entities.OrderItem{}, err
		}
	}

	return entities.NewOrderItem(o.ID, o.Type, menu, in.Quantity, in.Note, in.Options, options, now)
}
