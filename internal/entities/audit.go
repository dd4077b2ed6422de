package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditCreateDraft AuditAction = "CREATE_DRAFT"
	AuditSubmit      AuditAction = "SUBMIT"
	AuditAddItem     AuditAction = "ADD_ITEM"
	AuditUpdateItems AuditAction = "UPDATE_ITEMS"
	AuditCancel      AuditAction = "CANCEL"
	AuditCancelItem  AuditAction = "CANCEL_ITEM"
	AuditComplete    AuditAction = "COMPLETE"
	AuditItemStatus  AuditAction = "ITEM_STATUS"
)

func (a AuditAction) Valid() bool {
	switch a {
	case AuditCreateDraft, AuditSubmit, AuditAddItem, AuditUpdateItems,
		AuditCancel, AuditCancelItem, AuditComplete, AuditItemStatus:
		return true
	}
	return false
}

// AuditEntry is an immutable record of one order transition. Seq is its
// 1-based position in the order's trail.
type AuditEntry struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Seq        int
	EmployeeID uuid.UUID
	Action     AuditAction
	Reason     string
	NewValue   json.RawMessage
	CreatedAt  time.Time
}

// Actor is the employee on whose behalf a use case runs.
type Actor struct {
	EmployeeID uuid.UUID
}

func (a Actor) Valid() bool {
	return a.EmployeeID != uuid.Nil
}
