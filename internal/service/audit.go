package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/google/uuid"
)

// auditTrail records one immutable entry per transition on the aggregate and
// writes pending entries in the transaction of the state change.
type auditTrail struct {
	store AuditStore
}

func newAuditTrail(store AuditStore) *auditTrail {
	return &auditTrail{store: store}
}

func (a *auditTrail) Record(
	o *entities.Order,
	actor entities.Actor,
	action entities.AuditAction,
	reason string,
	newValue any,
	now time.Time,
) error {
	if !action.Valid() {
		return fmt.Errorf("unknown audit action %q", action)
	}

	var raw json.RawMessage
	if newValue != nil {
		data, err := json.Marshal(newValue)
		if err != nil {
			return fmt.Errorf("failed to marshal audit value: %w", err)
		}
		raw = data
	}

	o.RecordAudit(entities.AuditEntry{
		ID:         uuid.New(),
		OrderID:    o.ID,
		EmployeeID: actor.EmployeeID,
		Action:     action,
		Reason:     reason,
		NewValue:   raw,
		CreatedAt:  now,
	})
	return nil
}

func (a *auditTrail) Flush(ctx context.Context, entries []entities.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := a.store.AppendAudit(ctx, entries); err != nil {
		return fmt.Errorf("failed to append audit entries: %w", err)
	}
	return nil
}
