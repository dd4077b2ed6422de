package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root. Items and audit entries are owned by it and
// are always loaded and committed together with it.
type Order struct {
	ID       uuid.UUID
	Code     string
	Type     OrderType
	Status   OrderStatus
	TableID  *uuid.UUID
	Note     string
	Priority bool

	// TotalAmount is derived from Items, see RecalculateTotal.
	TotalAmount decimal.Decimal

	CreatedBy    uuid.UUID
	CancelReason string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	// Version is the optimistic concurrency stamp of the persisted row.
	Version int

	Items    []OrderItem
	AuditLog []AuditEntry

	persistedAudit int
}

type NewOrderParams struct {
	Type      OrderType
	TableID   *uuid.UUID
	Note      string
	Priority  bool
	CreatedBy uuid.UUID
}

// NewDraftOrder creates an order in Draft. A dine-in draft may be created
// without a table; the table is checked on submit.
func NewDraftOrder(p NewOrderParams, now time.Time) (*Order, error) {
	o, err := newOrder(p, now)
	if err != nil {
		return nil, err
	}
	o.Status = OrderStatusDraft
	return o, nil
}

// NewServingOrder creates an order that is submitted to the kitchen right away.
func NewServingOrder(p NewOrderParams, now time.Time) (*Order, error) {
	o, err := newOrder(p, now)
	if err != nil {
		return nil, err
	}
	if o.Type == OrderTypeDineIn && o.TableID == nil {
		return nil, ErrTableRequired
	}
	o.Status = OrderStatusServing
	o.SubmittedAt = &now
	return o, nil
}

func newOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if _, err := ParseOrderType(string(p.Type)); err != nil {
		return nil, err
	}
	if p.Type == OrderTypeTakeaway && p.TableID != nil {
		return nil, ErrTableNotAllowed
	}
	return &Order{
		ID:          uuid.New(),
		Type:        p.Type,
		TableID:     p.TableID,
		Note:        p.Note,
		Priority:    p.Priority,
		CreatedBy:   p.CreatedBy,
		TotalAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// EnsureOpen fails with ErrOrderFinished once the order is Completed or Cancelled.
func (o *Order) EnsureOpen() error {
	if o.Status.IsTerminal() {
		return ErrOrderFinished
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	o.UpdatedAt = now
}

func (o *Order) RecalculateTotal() {
	o.TotalAmount = OrderTotal(o.Items)
}

// AllItemsFinished is true when every item is Completed, Cancelled or Rejected.
func (o *Order) AllItemsFinished() bool {
	for i := range o.Items {
		if !o.Items[i].IsFinished() {
			return false
		}
	}
	return true
}

func (o *Order) releaseTableIfDone() {
	if o.Type == OrderTypeDineIn && o.AllItemsFinished() {
		o.TableID = nil
	}
}

func (o *Order) Item(id uuid.UUID) (*OrderItem, error) {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

// FindMergeTarget returns the Preparing line a new request with the same
// menu item, note and option signature would be merged into.
func (o *Order) FindMergeTarget(menuItemID uuid.UUID, note, signature string) *OrderItem {
	for i := range o.Items {
		it := &o.Items[i]
		if it.Status == ItemStatusPreparing && it.SameLine(menuItemID, note, signature) {
			return it
		}
	}
	return nil
}

// MergeOrAppend folds item into a matching Preparing line or appends it as a new line.
func (o *Order) MergeOrAppend(item OrderItem, now time.Time) (OrderItem, bool, error) {
	if err := o.EnsureOpen(); err != nil {
		return OrderItem{}, false, err
	}
	if item.Quantity <= 0 {
		return OrderItem{}, false, ErrInvalidQuantity
	}

	defer o.touch(now)
	defer o.RecalculateTotal()

	signature := SelectionSignature(item.Selections())
	if target := o.FindMergeTarget(item.MenuItemID, item.Note, signature); target != nil {
		target.Quantity += item.Quantity
		target.UpdatedAt = now
		return *target, true, nil
	}

	item.OrderID = o.ID
	o.Items = append(o.Items, item)
	return item, false, nil
}

// AppendItem adds item as a new line without looking for a line to merge into.
func (o *Order) AppendItem(item OrderItem, now time.Time) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
	o.touch(now)
	return nil
}

// AssignTable seats a dine-in draft at tableID.
func (o *Order) AssignTable(tableID uuid.UUID, now time.Time) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	if o.Status != OrderStatusDraft {
		return ErrOrderNotDraft
	}
	if o.Type != OrderTypeDineIn {
		return ErrTableNotAllowed
	}
	o.TableID = &tableID
	o.touch(now)
	return nil
}

// CheckItemUpdate reports the error UpdateItem would return, without changing the order.
func (o *Order) CheckItemUpdate(id uuid.UUID, quantity int, note string) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	it, err := o.Item(id)
	if err != nil {
		return err
	}
	if it.IsFinished() && (it.Quantity != quantity || it.Note != note) {
		return ErrItemFinished
	}
	return nil
}

// UpdateItem changes quantity and note of a line in place. Finished lines
// accept the request only when nothing changes.
func (o *Order) UpdateItem(id uuid.UUID, quantity int, note string, now time.Time) error {
	if err := o.CheckItemUpdate(id, quantity, note); err != nil {
		return err
	}
	it, _ := o.Item(id)
	if it.Quantity == quantity && it.Note == note {
		return nil
	}

	it.Quantity = quantity
	it.Note = note
	it.UpdatedAt = now
	o.RecalculateTotal()
	o.touch(now)
	return nil
}

// CancelItemsExcept cancels every line whose id is not in keep and returns the
// ids that changed. Lines are never removed.
func (o *Order) CancelItemsExcept(keep map[uuid.UUID]bool, reason string, now time.Time) ([]uuid.UUID, error) {
	if err := o.EnsureOpen(); err != nil {
		return nil, err
	}
	var cancelled []uuid.UUID
	for i := range o.Items {
		it := &o.Items[i]
		if keep[it.ID] {
			continue
		}
		if it.Cancel(reason, now) {
			cancelled = append(cancelled, it.ID)
		}
	}
	if len(cancelled) > 0 {
		o.RecalculateTotal()
		o.touch(now)
	}
	return cancelled, nil
}

// CancelItem cancels a single line. It reports false without error when the
// line is already past the point where it can be cancelled.
func (o *Order) CancelItem(id uuid.UUID, reason string, now time.Time) (bool, error) {
	if err := o.EnsureOpen(); err != nil {
		return false, err
	}
	it, err := o.Item(id)
	if err != nil {
		return false, err
	}
	if !it.Cancel(reason, now) {
		return false, nil
	}
	o.RecalculateTotal()
	o.touch(now)
	return true, nil
}

// Submit moves a draft to the kitchen.
func (o *Order) Submit(now time.Time) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	if o.Status != OrderStatusDraft {
		return ErrOrderNotDraft
	}
	if !o.hasLiveItems() {
		return ErrNoItems
	}
	if o.Type == OrderTypeDineIn && o.TableID == nil {
		return ErrTableRequired
	}

	for i := range o.Items {
		if !o.Items[i].IsFinished() {
			o.Items[i].Status = ItemStatusPreparing
		}
	}
	o.Status = OrderStatusServing
	o.SubmittedAt = &now
	o.RecalculateTotal()
	o.touch(now)
	return nil
}

func (o *Order) hasLiveItems() bool {
	for i := range o.Items {
		if !o.Items[i].Status.IsVoid() {
			return true
		}
	}
	return false
}

// Complete closes a serving order. A dine-in table is released only when all
// items are finished; otherwise the kitchen flow releases it later.
func (o *Order) Complete(now time.Time) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	if o.Status != OrderStatusServing {
		return ErrOrderNotServing
	}

	o.RecalculateTotal()
	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	o.releaseTableIfDone()
	o.touch(now)
	return nil
}

// Cancel cancels a draft or serving order together with its unfinished items.
// A reason is mandatory unless the order is still a draft.
func (o *Order) Cancel(reason string, now time.Time) error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if o.Status != OrderStatusDraft && reason == "" {
		return ErrReasonRequired
	}

	for i := range o.Items {
		o.Items[i].Cancel(reason, now)
	}
	o.Status = OrderStatusCancelled
	o.CancelReason = reason
	o.CancelledAt = &now
	if o.Type == OrderTypeDineIn {
		o.TableID = nil
	}
	o.RecalculateTotal()
	o.touch(now)
	return nil
}

// UpdateItemStatus applies a kitchen status change to one item. Completed
// orders still accept it so that remaining items can finish and free the table.
func (o *Order) UpdateItemStatus(id uuid.UUID, to ItemStatus, now time.Time) error {
	switch o.Status {
	case OrderStatusServing, OrderStatusCompleted:
	case OrderStatusDraft:
		return ErrOrderNotServing
	default:
		return ErrOrderFinished
	}
	if to == ItemStatusCancelled {
		return ErrItemTransition
	}

	it, err := o.Item(id)
	if err != nil {
		return err
	}
	if err := it.Advance(to, now); err != nil {
		return err
	}

	o.RecalculateTotal()
	if o.Status == OrderStatusCompleted {
		o.releaseTableIfDone()
	}
	o.touch(now)
	return nil
}

// RecordAudit appends an entry to the order's trail. Entries are never changed afterwards.
func (o *Order) RecordAudit(e AuditEntry) {
	e.Seq = len(o.AuditLog) + 1
	o.AuditLog = append(o.AuditLog, e)
}

// PendingAudit returns entries recorded since the order was loaded or last committed.
func (o *Order) PendingAudit() []AuditEntry {
	return o.AuditLog[o.persistedAudit:]
}

func (o *Order) MarkAuditPersisted() {
	o.persistedAudit = len(o.AuditLog)
}
