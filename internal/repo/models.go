package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "code", "order_type", "status", "table_id", "note", "priority",
	"total_amount", "created_by", "cancel_reason", "created_at", "updated_at",
	"submitted_at", "completed_at", "cancelled_at", "version",
}

type Order struct {
	ID           uuid.UUID       `db:"id"`
	Code         string          `db:"code"`
	Type         string          `db:"order_type"`
	Status       string          `db:"status"`
	TableID      uuid.NullUUID   `db:"table_id"`
	Note         string          `db:"note"`
	Priority     bool            `db:"priority"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	CreatedBy    uuid.UUID       `db:"created_by"`
	CancelReason string          `db:"cancel_reason"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	SubmittedAt  sql.NullTime    `db:"submitted_at"`
	CompletedAt  sql.NullTime    `db:"completed_at"`
	CancelledAt  sql.NullTime    `db:"cancelled_at"`
	Version      int             `db:"version"`
}

var itemColumns = []string{
	"id", "order_id", "line_no", "menu_item_id", "item_code", "item_name",
	"unit_price", "station", "status", "quantity", "note", "cancel_reason",
	"created_at", "updated_at", "completed_at", "cancelled_at",
}

type Item struct {
	ID           uuid.UUID       `db:"id"`
	OrderID      uuid.UUID       `db:"order_id"`
	LineNo       int             `db:"line_no"`
	MenuItemID   uuid.UUID       `db:"menu_item_id"`
	ItemCode     string          `db:"item_code"`
	ItemName     string          `db:"item_name"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	Station      string          `db:"station"`
	Status       string          `db:"status"`
	Quantity     int             `db:"quantity"`
	Note         string          `db:"note"`
	CancelReason string          `db:"cancel_reason"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	CompletedAt  sql.NullTime    `db:"completed_at"`
	CancelledAt  sql.NullTime    `db:"cancelled_at"`
}

type OptionGroup struct {
	ID            uuid.UUID `db:"id"`
	OrderItemID   uuid.UUID `db:"order_item_id"`
	Position      int       `db:"position"`
	OptionGroupID uuid.UUID `db:"option_group_id"`
	Name          string    `db:"name"`
	GroupType     string    `db:"group_type"`
}

type OptionValue struct {
	ID           uuid.UUID       `db:"id"`
	GroupID      uuid.UUID       `db:"group_id"`
	Position     int             `db:"position"`
	OptionItemID uuid.UUID       `db:"option_item_id"`
	Label        string          `db:"label"`
	ExtraPrice   decimal.Decimal `db:"extra_price"`
	Quantity     int             `db:"quantity"`
	Note         string          `db:"note"`
}

type Audit struct {
	ID         uuid.UUID      `db:"id"`
	OrderID    uuid.UUID      `db:"order_id"`
	Seq        int            `db:"seq"`
	EmployeeID uuid.UUID      `db:"employee_id"`
	Action     string         `db:"action"`
	Reason     string         `db:"reason"`
	NewValue   sql.NullString `db:"new_value"`
	CreatedAt  time.Time      `db:"created_at"`
}

type MenuItem struct {
	ID            uuid.UUID           `db:"id"`
	Code          string              `db:"code"`
	Name          string              `db:"name"`
	PriceDineIn   decimal.Decimal     `db:"price_dine_in"`
	PriceTakeAway decimal.NullDecimal `db:"price_take_away"`
	Station       string              `db:"station"`
	IsOutOfStock  bool                `db:"is_out_of_stock"`
}

type OptionItem struct {
	ID          uuid.UUID       `db:"id"`
	Label       string          `db:"label"`
	ExtraPrice  decimal.Decimal `db:"extra_price"`
	IsAvailable bool            `db:"is_available"`
	GroupID     uuid.UUID       `db:"group_id"`
	MenuItemID  uuid.UUID       `db:"menu_item_id"`
	GroupName   string          `db:"group_name"`
	GroupType   string          `db:"group_type"`
}

func OrderToEntity(o Order, items []entities.OrderItem, audit []entities.AuditEntry) *entities.Order {
	order := &entities.Order{
		ID:           o.ID,
		Code:         o.Code,
		Type:         entities.OrderType(o.Type),
		Status:       entities.OrderStatus(o.Status),
		Note:         o.Note,
		Priority:     o.Priority,
		TotalAmount:  o.TotalAmount,
		CreatedBy:    o.CreatedBy,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt.UTC(),
		UpdatedAt:    o.UpdatedAt.UTC(),
		SubmittedAt:  timePtr(o.SubmittedAt),
		CompletedAt:  timePtr(o.CompletedAt),
		CancelledAt:  timePtr(o.CancelledAt),
		Version:      o.Version,
		Items:        items,
		AuditLog:     audit,
	}
	if o.TableID.Valid {
		id := o.TableID.UUID
		order.TableID = &id
	}
	return order
}

func ItemToEntity(i Item, groups []entities.OrderItemOptionGroup) entities.OrderItem {
	return entities.OrderItem{
		ID:           i.ID,
		OrderID:      i.OrderID,
		MenuItemID:   i.MenuItemID,
		ItemCode:     i.ItemCode,
		ItemName:     i.ItemName,
		UnitPrice:    i.UnitPrice,
		Station:      i.Station,
		Status:       entities.ItemStatus(i.Status),
		Quantity:     i.Quantity,
		Note:         i.Note,
		OptionGroups: groups,
		CancelReason: i.CancelReason,
		CreatedAt:    i.CreatedAt.UTC(),
		UpdatedAt:    i.UpdatedAt.UTC(),
		CompletedAt:  timePtr(i.CompletedAt),
		CancelledAt:  timePtr(i.CancelledAt),
	}
}

func OptionGroupToEntity(g OptionGroup, values []entities.OrderItemOptionValue) entities.OrderItemOptionGroup {
	return entities.OrderItemOptionGroup{
		ID:            g.ID,
		OptionGroupID: g.OptionGroupID,
		Name:          g.Name,
		Type:          entities.OptionGroupType(g.GroupType),
		Values:        values,
	}
}

func OptionValueToEntity(v OptionValue) entities.OrderItemOptionValue {
	return entities.OrderItemOptionValue{
		ID:           v.ID,
		OptionItemID: v.OptionItemID,
		Label:        v.Label,
		ExtraPrice:   v.ExtraPrice,
		Quantity:     v.Quantity,
		Note:         v.Note,
	}
}

func AuditToEntity(a Audit) entities.AuditEntry {
	var value json.RawMessage
	if a.NewValue.Valid {
		value = json.RawMessage(a.NewValue.String)
	}
	return entities.AuditEntry{
		ID:         a.ID,
		OrderID:    a.OrderID,
		Seq:        a.Seq,
		EmployeeID: a.EmployeeID,
		Action:     entities.AuditAction(a.Action),
		Reason:     a.Reason,
		NewValue:   value,
		CreatedAt:  a.CreatedAt.UTC(),
	}
}

func MenuItemToEntity(m MenuItem) entities.MenuItem {
	return entities.MenuItem{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		PriceDineIn:   m.PriceDineIn,
		PriceTakeAway: m.PriceTakeAway,
		Station:       m.Station,
		IsOutOfStock:  m.IsOutOfStock,
	}
}

func OptionItemToEntity(o OptionItem) entities.OptionItem {
	return entities.OptionItem{
		ID: o.ID,
		Group: entities.OptionGroup{
			ID:         o.GroupID,
			MenuItemID: o.MenuItemID,
			Name:       o.GroupName,
			Type:       entities.OptionGroupType(o.GroupType),
		},
		Label:       o.Label,
		ExtraPrice:  o.ExtraPrice,
		IsAvailable: o.IsAvailable,
	}
}
