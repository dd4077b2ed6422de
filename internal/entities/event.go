package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventVersion  = 1
	EventProducer = "restaurant-pos"
)

// OrderEvent is the envelope published after a committed transition.
type OrderEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	EventType    AuditAction     `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	OrderID      uuid.UUID       `json:"order_id"`
	OrderCode    string          `json:"order_code"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	Reason       string          `json:"reason,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}

func NewOrderEvent(o *Order, e AuditEntry) OrderEvent {
	return OrderEvent{
		EventID:      e.ID,
		EventType:    e.Action,
		EventVersion: EventVersion,
		OccurredAt:   e.CreatedAt,
		Producer:     EventProducer,
		OrderID:      o.ID,
		OrderCode:    o.Code,
		Status:       o.Status,
		Total:        o.TotalAmount,
		EmployeeID:   e.EmployeeID,
		Reason:       e.Reason,
		Payload:      e.NewValue,
	}
}
