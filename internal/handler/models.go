package handler

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest открывает черновик заказа
type CreateDraftRequest struct {
	Type     string     `json:"type" validate:"required,oneof=DINE_IN TAKEAWAY"`
	TableID  *uuid.UUID `json:"table_id,omitempty" swaggertype:"string"`
	Note     string     `json:"note,omitempty" validate:"max=500"`
	Priority bool       `json:"priority,omitempty"`
}

// SubmitToKitchenRequest создаёт заказ сразу в статусе SERVING
type SubmitToKitchenRequest struct {
	CreateDraftRequest
	Items []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ItemRequest позиция заказа
type ItemRequest struct {
	ItemID     *uuid.UUID      `json:"item_id,omitempty" swaggertype:"string"`
	MenuItemID uuid.UUID       `json:"menu_item_id" validate:"required" swaggertype:"string"`
	Quantity   int             `json:"quantity" validate:"gt=0"`
	Note       string          `json:"note,omitempty" validate:"max=500"`
	Options    []OptionRequest `json:"options,omitempty" validate:"dive"`
}

// OptionRequest выбранная опция позиции
type OptionRequest struct {
	OptionItemID uuid.UUID `json:"option_item_id" validate:"required" swaggertype:"string"`
	Quantity     int       `json:"quantity,omitempty" validate:"gte=0"`
	Note         string    `json:"note,omitempty" validate:"max=200"`
}

type AddItemRequest struct {
	ItemRequest
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type UpdateItemsRequest struct {
	Items  []ItemRequest `json:"items" validate:"required,min=1,dive"`
	Reason string        `json:"reason,omitempty" validate:"max=500"`
}

type SubmitRequest struct {
	TableID *uuid.UUID `json:"table_id,omitempty" swaggertype:"string"`
}

type ReasonRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// Order представляет заказ
type Order struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Type         string       `json:"type"`
	Status       string       `json:"status"`
	TableID      *string      `json:"table_id,omitempty"`
	Note         string       `json:"note,omitempty"`
	Priority     bool         `json:"priority"`
	TotalAmount  string       `json:"total_amount"`
	CreatedBy    string       `json:"created_by"`
	CancelReason string       `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	SubmittedAt  *time.Time   `json:"submitted_at,omitempty"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	CancelledAt  *time.Time   `json:"cancelled_at,omitempty"`
	Version      int          `json:"version"`
	Items        []Item       `json:"items"`
	AuditLog     []AuditEntry `json:"audit_log,omitempty"`
}

// Item позиция заказа
type Item struct {
	ID           string        `json:"id"`
	MenuItemID   string        `json:"menu_item_id"`
	ItemCode     string        `json:"item_code"`
	ItemName     string        `json:"item_name"`
	UnitPrice    string        `json:"unit_price"`
	LineTotal    string        `json:"line_total"`
	Station      string        `json:"station,omitempty"`
	Status       string        `json:"status"`
	Quantity     int           `json:"quantity"`
	Note         string        `json:"note,omitempty"`
	OptionGroups []OptionGroup `json:"option_groups,omitempty"`
	CancelReason string        `json:"cancel_reason,omitempty"`
}

type OptionGroup struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []OptionValue `json:"values"`
}

type OptionValue struct {
	OptionItemID string `json:"option_item_id"`
	Label        string `json:"label"`
	ExtraPrice   string `json:"extra_price"`
	Quantity     int    `json:"quantity"`
	Note         string `json:"note,omitempty"`
}

// AuditEntry запись журнала изменений заказа
type AuditEntry struct {
	Seq        int             `json:"seq"`
	EmployeeID string          `json:"employee_id"`
	Action     string          `json:"action"`
	Reason     string          `json:"reason,omitempty"`
	NewValue   json.RawMessage `json:"new_value,omitempty" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ChangedResponse struct {
	Changed bool `json:"changed"`
}

type CompleteResponse struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Total         string `json:"total"`
	TableReleased bool   `json:"table_released"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func OptionRequestToEntity(o OptionRequest) entities.OptionSelection {
	return entities.OptionSelection{
		OptionItemID: o.OptionItemID,
		Quantity:     o.Quantity,
		Note:         o.Note,
	}
}

func ItemRequestToInput(i ItemRequest) service.ItemInput {
	options := make([]entities.OptionSelection, 0, len(i.Options))
	for _, o := range i.Options {
		options = append(options, OptionRequestToEntity(o))
	}
	return service.ItemInput{
		ItemID:     i.ItemID,
		MenuItemID: i.MenuItemID,
		Quantity:   i.Quantity,
		Note:       i.Note,
		Options:    options,
	}
}

func ItemRequestsToInput(items []ItemRequest) []service.ItemInput {
	out := make([]service.ItemInput, 0, len(items))
	for _, i := range items {
		out = append(out, ItemRequestToInput(i))
	}
	return out
}

func ItemEntityToJSON(i entities.OrderItem) Item {
	groups := make([]OptionGroup, 0, len(i.OptionGroups))
	for _, g := range i.OptionGroups {
		values := make([]OptionValue, 0, len(g.Values))
		for _, v := range g.Values {
			values = append(values, OptionValue{
				OptionItemID: v.OptionItemID.String(),
				Label:        v.Label,
				ExtraPrice:   money(v.ExtraPrice),
				Quantity:     v.Quantity,
				Note:         v.Note,
			})
		}
		groups = append(groups, OptionGroup{Name: g.Name, Type: string(g.Type), Values: values})
	}

	return Item{
		ID:           i.ID.String(),
		MenuItemID:   i.MenuItemID.String(),
		ItemCode:     i.ItemCode,
		ItemName:     i.ItemName,
		UnitPrice:    money(i.UnitPrice),
		LineTotal:    money(entities.LineTotal(i)),
		Station:      i.Station,
		Status:       string(i.Status),
		Quantity:     i.Quantity,
		Note:         i.Note,
		OptionGroups: groups,
		CancelReason: i.CancelReason,
	}
}

func AuditEntityToJSON(e entities.AuditEntry) AuditEntry {
	return AuditEntry{
		Seq:        e.Seq,
		EmployeeID: e.EmployeeID.String(),
		Action:     string(e.Action),
		Reason:     e.Reason,
		NewValue:   e.NewValue,
		CreatedAt:  e.CreatedAt,
	}
}

func OrderEntityToJSON(o *entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, ItemEntityToJSON(i))
	}
	audit := make([]AuditEntry, 0, len(o.AuditLog))
	for _, e := range o.AuditLog {
		audit = append(audit, AuditEntityToJSON(e))
	}

	var tableID *string
	if o.TableID != nil {
		id := o.TableID.String()
		tableID = &id
	}

	return Order{
		ID:           o.ID.String(),
		Code:         o.Code,
		Type:         string(o.Type),
		Status:       string(o.Status),
		TableID:      tableID,
		Note:         o.Note,
		Priority:     o.Priority,
		TotalAmount:  money(o.TotalAmount),
		CreatedBy:    o.CreatedBy.String(),
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		SubmittedAt:  o.SubmittedAt,
		CompletedAt:  o.CompletedAt,
		CancelledAt:  o.CancelledAt,
		Version:      o.Version,
		Items:        items,
		AuditLog:     audit,
	}
}

func CompleteResultToJSON(res service.CompleteResult) CompleteResponse {
	return CompleteResponse{
		OrderID:       res.OrderID.String(),
		Status:        string(res.Status),
		Total:         money(res.Total),
		TableReleased: res.TableReleased,
	}
}

// KitchenEvent сообщение кухни об изменении статуса позиции
type KitchenEvent struct {
	OrderID    uuid.UUID `json:"order_id" validate:"required"`
	ItemID     uuid.UUID `json:"item_id" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=COOKING READY COMPLETED REJECTED"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Reason     string    `json:"reason,omitempty"`
}

func KitchenEventToInput(e KitchenEvent) (entities.Actor, service.ItemStatusInput) {
	return entities.Actor{EmployeeID: e.EmployeeID}, service.ItemStatusInput{
		OrderID: e.OrderID,
		ItemID:  e.ItemID,
		Status:  entities.ItemStatus(e.Status),
		Reason:  e.Reason,
	}
}
