package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	sqlRepo
}

func NewOrderRepo(db *sqlx.DB, ph sq.PlaceholderFormat) *orderRepo {
	return &orderRepo{sqlRepo: newSQLRepo(db, ph)}
}

// Load reads the whole aggregate: items with their option snapshots and the audit trail.
func (r *orderRepo) Load(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}

	// Получаем журнал
	query, args = r.qb.Select("id", "order_id", "seq", "employee_id", "action", "reason", "new_value", "created_at").
		From("order_audit").
		Where(sq.Eq{"order_id": id}).
		OrderBy("seq").
		MustSql()

	var rows []Audit
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select audit: %w", err)
	}
	audit := make([]entities.AuditEntry, 0, len(rows))
	for _, a := range rows {
		audit = append(audit, AuditToEntity(a))
	}

	o := OrderToEntity(order, items, audit)
	// total_amount хранится для отчетов, источник истины позиции
	o.RecalculateTotal()
	o.MarkAuditPersisted()
	return o, nil
}

func (r *orderRepo) loadItems(ctx context.Context, orderID uuid.UUID) ([]entities.OrderItem, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("line_no").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	if len(items) == 0 {
		return []entities.OrderItem{}, nil
	}

	itemIDs := make([]string, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID.String()
	}

	// Получаем снимки опций
	query, args = r.qb.Select("id", "order_item_id", "position", "option_group_id", "name", "group_type").
		From("order_item_option_groups").
		Where(sq.Eq{"order_item_id": itemIDs}).
		OrderBy("position").
		MustSql()

	var groups []OptionGroup
	if err := r.selectContext(ctx, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select option groups: %w", err)
	}

	valuesMap := make(map[uuid.UUID][]entities.OrderItemOptionValue, len(groups))
	if len(groups) > 0 {
		groupIDs := make([]string, len(groups))
		for i, g := range groups {
			groupIDs[i] = g.ID.String()
		}

		query, args = r.qb.Select("id", "group_id", "position", "option_item_id", "label", "extra_price", "quantity", "note").
			From("order_item_option_values").
			Where(sq.Eq{"group_id": groupIDs}).
			OrderBy("position").
			MustSql()

		var values []OptionValue
		if err := r.selectContext(ctx, &values, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select option values: %w", err)
		}
		for _, v := range values {
			valuesMap[v.GroupID] = append(valuesMap[v.GroupID], OptionValueToEntity(v))
		}
	}

	groupsMap := make(map[uuid.UUID][]entities.OrderItemOptionGroup, len(items))
	for _, g := range groups {
		groupsMap[g.OrderItemID] = append(groupsMap[g.OrderItemID], OptionGroupToEntity(g, valuesMap[g.ID]))
	}

	result := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it, groupsMap[it.ID]))
	}
	return result, nil
}

// Create inserts a new order at version 1 together with its items.
func (r *orderRepo) Create(ctx context.Context, o *entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.Code, string(o.Type), string(o.Status), o.TableID, o.Note, o.Priority,
			o.TotalAmount, o.CreatedBy, o.CancelReason, o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
			nullTime(o.SubmittedAt), nullTime(o.CompletedAt), nullTime(o.CancelledAt), 1,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrDuplicateOrderCode
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := r.saveItems(ctx, o); err != nil {
		return err
	}
	o.Version = 1
	return nil
}

// Save writes the order row guarded by its version, then upserts the items.
// A stale version fails with ErrConcurrentModification.
func (r *orderRepo) Save(ctx context.Context, o *entities.Order) error {
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"status":        string(o.Status),
			"table_id":      o.TableID,
			"note":          o.Note,
			"priority":      o.Priority,
			"total_amount":  o.TotalAmount,
			"cancel_reason": o.CancelReason,
			"updated_at":    o.UpdatedAt.UTC(),
			"submitted_at":  nullTime(o.SubmittedAt),
			"completed_at":  nullTime(o.CompletedAt),
			"cancelled_at":  nullTime(o.CancelledAt),
			"version":       o.Version + 1,
		}).
		Where(sq.Eq{"id": o.ID, "version": o.Version}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrConcurrentModification
	}

	if err := r.saveItems(ctx, o); err != nil {
		return err
	}
	o.Version++
	return nil
}

// saveItems upserts the mutable columns of every line. Option snapshots are
// written once and never updated.
func (r *orderRepo) saveItems(ctx context.Context, o *entities.Order) error {
	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			quantity = excluded.quantity,
			note = excluded.note,
			cancel_reason = excluded.cancel_reason,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at,
			cancelled_at = excluded.cancelled_at`)

	groups := r.qb.Insert("order_item_option_groups").
		Columns("id", "order_item_id", "position", "option_group_id", "name", "group_type").
		Suffix("ON CONFLICT (id) DO NOTHING")
	values := r.qb.Insert("order_item_option_values").
		Columns("id", "group_id", "position", "option_item_id", "label", "extra_price", "quantity", "note").
		Suffix("ON CONFLICT (id) DO NOTHING")
	var groupCount, valueCount int

	for i, it := range o.Items {
		q = q.Values(
			it.ID, o.ID, i+1, it.MenuItemID, it.ItemCode, it.ItemName,
			it.UnitPrice, it.Station, string(it.Status), it.Quantity, it.Note, it.CancelReason,
			it.CreatedAt.UTC(), it.UpdatedAt.UTC(), nullTime(it.CompletedAt), nullTime(it.CancelledAt),
		)

		for gi, g := range it.OptionGroups {
			groups = groups.Values(g.ID, it.ID, gi+1, g.OptionGroupID, g.Name, string(g.Type))
			groupCount++
			for vi, v := range g.Values {
				values = values.Values(v.ID, g.ID, vi+1, v.OptionItemID, v.Label, v.ExtraPrice, v.Quantity, v.Note)
				valueCount++
			}
		}
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}

	if groupCount > 0 {
		query, args = groups.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save option groups: %w", err)
		}
	}
	if valueCount > 0 {
		query, args = values.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save option values: %w", err)
		}
	}
	return nil
}

func (r *orderRepo) AppendAudit(ctx context.Context, entries []entities.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	q := r.qb.Insert("order_audit").
		Columns("id", "order_id", "seq", "employee_id", "action", "reason", "new_value", "created_at")
	for _, e := range entries {
		q = q.Values(e.ID, e.OrderID, e.Seq, e.EmployeeID, string(e.Action), e.Reason, nullString(string(e.NewValue)), e.CreatedAt.UTC())
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append audit: %w", err)
	}
	return nil
}

// LastCodeWithPrefix returns the greatest code starting with prefix, or "" when there is none.
// Longer codes sort first so that a sequence past 9999 still wins.
func (r *orderRepo) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	query, args := r.qb.Select("code").
		From("orders").
		Where(sq.Like{"code": prefix + "%"}).
		OrderBy("LENGTH(code) DESC", "code DESC").
		Limit(1).
		MustSql()

	var code string
	err := r.getContext(ctx, &code, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last code: %w", err)
	}
	return code, nil
}

// TableOccupied reports whether an order other than exceptOrderID still holds the table.
func (r *orderRepo) TableOccupied(ctx context.Context, tableID, exceptOrderID uuid.UUID) (bool, error) {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"table_id": tableID}).
		Where(sq.NotEq{"id": exceptOrderID, "status": string(entities.OrderStatusCancelled)}).
		Limit(1).
		MustSql()

	var id uuid.UUID
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table: %w", err)
	}
	return true, nil
}
