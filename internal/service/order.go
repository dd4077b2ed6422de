package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/locker"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/trm"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/utils"
	"github.com/google/uuid"
)

// OrderStore loads and persists whole order aggregates.
type OrderStore interface {
	Load(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	// Create inserts a new order with its items. A taken code fails with ErrDuplicateOrderCode.
	Create(ctx context.Context, o *entities.Order) error
	// Save persists a loaded order; a stale Version fails with ErrConcurrentModification.
	Save(ctx context.Context, o *entities.Order) error
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
	TableOccupied(ctx context.Context, tableID, exceptOrderID uuid.UUID) (bool, error)
}

type AuditStore interface {
	AppendAudit(ctx context.Context, entries []entities.AuditEntry) error
}

type CatalogLookup interface {
	GetMenuItem(ctx context.Context, id uuid.UUID) (entities.MenuItem, error)
	// GetOptionItems returns the option items of menuItemID among ids. Unknown ids are omitted.
	GetOptionItems(ctx context.Context, menuItemID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]entities.OptionItem, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, events []entities.OrderEvent) error
}

type Locker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

type Options struct {
	// CodeAttempts bounds order-code allocation retries on a duplicate code.
	CodeAttempts int
	// MergeReasonRequired demands a reason when AddItem merges into a line of a serving order.
	MergeReasonRequired bool
	PublishTimeout      time.Duration
	Now                 func() time.Time
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     OrderStore
	catalog   CatalogLookup
	locker    Locker
	audit     *auditTrail
	codes     *sequenceGenerator
	events    *eventDispatcher
	opts      Options
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	store OrderStore,
	audit AuditStore,
	catalog CatalogLookup,
	locker Locker,
	publisher EventPublisher,
	opts Options,
) *orderService {
	if opts.CodeAttempts <= 0 {
		opts.CodeAttempts = 3
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger = logger.With(slog.String("service", "order"))
	return &orderService{
		logger:    logger,
		txManager: txManager,
		store:     store,
		catalog:   catalog,
		locker:    locker,
		audit:     newAuditTrail(audit),
		codes:     newSequenceGenerator(store),
		events:    newEventDispatcher(logger, publisher, opts.PublishTimeout),
		opts:      opts,
	}
}

func (s *orderService) now() time.Time {
	return s.opts.Now().UTC()
}

type CreateDraftInput struct {
	Type     entities.OrderType
	TableID  *uuid.UUID
	Note     string
	Priority bool
}

func (s *orderService) CreateDraft(ctx context.Context, actor entities.Actor, in CreateDraftInput) (*entities.Order, error) {
	if !actor.Valid() {
		return nil, entities.ErrMissingActor
	}

	now := s.now()
	o, err := entities.NewDraftOrder(entities.NewOrderParams{
		Type:      in.Type,
		TableID:   in.TableID,
		Note:      in.Note,
		Priority:  in.Priority,
		CreatedBy: actor.EmployeeID,
	}, now)
	if err != nil {
		return nil, err
	}

	err = s.audit.Record(o, actor, entities.AuditCreateDraft, "", map[string]any{
		"type":     o.Type,
		"table_id": o.TableID,
		"note":     o.Note,
		"priority": o.Priority,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := s.insert(ctx, o); err != nil {
		return nil, storeError(err)
	}

	s.logger.DebugContext(ctx, "draft created", slog.String("order_id", o.ID.String()), slog.String("code", o.Code))
	return o, nil
}

type SubmitToKitchenInput struct {
	Type     entities.OrderType
	TableID  *uuid.UUID
	Note     string
	Priority bool
	Items    []ItemInput
}

// SubmitToKitchen creates an order directly in Serving. Duplicate lines of the
// request are merged before the order is stored.
func (s *orderService) SubmitToKitchen(ctx context.Context, actor entities.Actor, in SubmitToKitchenInput) (*entities.Order, error) {
	if !actor.Valid() {
		return nil, entities.ErrMissingActor
	}
	if len(in.Items) == 0 {
		return nil, entities.ErrNoItems
	}

	now := s.now()
	o, err := entities.NewServingOrder(entities.NewOrderParams{
		Type:      in.Type,
		TableID:   in.TableID,
		Note:      in.Note,
		Priority:  in.Priority,
		CreatedBy: actor.EmployeeID,
	}, now)
	if err != nil {
		return nil, err
	}

	for _, line := range in.Items {
		item, err := s.buildItem(ctx, o, line, now)
		if err != nil {
			return nil, err
		}
		if _, _, err := o.MergeOrAppend(item, now); err != nil {
			return nil, err
		}
	}

	err = s.audit.Record(o, actor, entities.AuditSubmit, "", map[string]any{
		"status": o.Status,
		"lines":  len(o.Items),
		"total":  o.TotalAmount,
		"direct": true,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := s.insert(ctx, o); err != nil {
		return nil, storeError(err)
	}

	s.logger.DebugContext(ctx, "order submitted to kitchen", slog.String("order_id", o.ID.String()), slog.String("code", o.Code))
	return o, nil
}

type SubmitInput struct {
	OrderID uuid.UUID
	// TableID seats a dine-in draft before it is submitted.
	TableID *uuid.UUID
}

func (s *orderService) Submit(ctx context.Context, actor entities.Actor, in SubmitInput) (*entities.Order, error) {
	return s.mutate(ctx, actor, in.OrderID, func(ctx context.Context, o *entities.Order, now time.Time) error {
		if in.TableID != nil {
			if err := o.AssignTable(*in.TableID, now); err != nil {
				return err
			}
			if err := s.ensureTableFree(ctx, o); err != nil {
				return err
			}
		}
		if err := o.Submit(now); err != nil {
			return err
		}
		return s.audit.Record(o, actor, entities.AuditSubmit, "", map[string]any{
			"status":   o.Status,
			"table_id": o.TableID,
			"total":    o.TotalAmount,
		}, now)
	})
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entities.Order, error) {
	var order *entities.Order
	fn := func() error {
		var err error
		order, err = s.store.Load(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 50 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(ctx, cfg, fn, entities.ErrOrderNotFound); err != nil {
		return nil, storeError(err)
	}
	return order, nil
}

// insert allocates the next code of the order's day and stores the order.
// Allocation is serialized per day and retried on a duplicate code.
func (s *orderService) insert(ctx context.Context, o *entities.Order) error {
	day := o.CreatedAt
	unlock, err := s.locker.Lock(ctx, codeLockKey(day))
	if err != nil {
		return fmt.Errorf("failed to lock code allocation: %w", err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "failed to release code allocation lock", slog.Any("error", err))
		}
	}()

	cfg := utils.RetryConfig{
		MaxAttempts:  s.opts.CodeAttempts,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     100 * time.Millisecond,
		Retryable: func(err error) bool {
			return errors.Is(err, entities.ErrDuplicateOrderCode)
		},
	}

	attempt := 0
	err = utils.Retry(ctx, cfg, func() error {
		if attempt++; attempt > 1 {
			codeRetries.Inc()
		}
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.ensureTableFree(ctx, o); err != nil {
				return err
			}
			code, err := s.codes.Next(ctx, day)
			if err != nil {
				return err
			}
			o.Code = code

			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.store.Create(ctx, o); err != nil {
				return err
			}
			return s.commit(ctx, o)
		})
	})
	if errors.Is(err, entities.ErrDuplicateOrderCode) {
		return entities.ErrCodeGenerationConflict
	}
	return err
}

type mutation func(ctx context.Context, o *entities.Order, now time.Time) error

// mutate loads the order, applies fn and saves the result in one transaction.
// Nothing is written when fn records no audit entry.
func (s *orderService) mutate(ctx context.Context, actor entities.Actor, orderID uuid.UUID, fn mutation) (*entities.Order, error) {
	if !actor.Valid() {
		return nil, entities.ErrMissingActor
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.store.Load(ctx, orderID)
		if err != nil {
			return err
		}
		if err := fn(ctx, o, s.now()); err != nil {
			return err
		}
		order = o
		if len(o.PendingAudit()) == 0 {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.store.Save(ctx, o); err != nil {
			return err
		}
		return s.commit(ctx, o)
	})
	if err != nil {
		return nil, storeError(err)
	}
	return order, nil
}

// commit writes pending audit entries in the current transaction and
// schedules their events for after the commit.
func (s *orderService) commit(ctx context.Context, o *entities.Order) error {
	pending := o.PendingAudit()
	if err := s.audit.Flush(ctx, pending); err != nil {
		return err
	}

	entries := append([]entities.AuditEntry(nil), pending...)
	trm.AfterCommit(ctx, func(ctx context.Context) {
		o.MarkAuditPersisted()
		for _, e := range entries {
			transitionsTotal.WithLabelValues(string(e.Action)).Inc()
			s.logger.DebugContext(ctx, "order transition",
				slog.String("order_id", o.ID.String()),
				slog.String("action", string(e.Action)),
			)
		}
		s.events.Dispatch(ctx, o, entries)
	})
	return nil
}

func (s *orderService) ensureTableFree(ctx context.Context, o *entities.Order) error {
	if o.Type != entities.OrderTypeDineIn || o.TableID == nil {
		return nil
	}
	occupied, err := s.store.TableOccupied(ctx, *o.TableID, o.ID)
	if err != nil {
		return fmt.Errorf("failed to check table: %w", err)
	}
	if occupied {
		return entities.ErrTableOccupied
	}
	return nil
}

func codeLockKey(day time.Time) string {
	return "order-code:" + day.UTC().Format("20060102")
}

// storeError tags failures outside the domain taxonomy as persistence failures.
func storeError(err error) error {
	if err == nil || entities.KindOf(err) != nil ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", entities.ErrStorage, err)
}
