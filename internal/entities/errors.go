package entities

import "errors"

// Error categories. Every domain error unwraps to exactly one of them.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Error is a domain error carrying a stable code for the boundary layer.
type Error struct {
	Kind error
	Code string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

var (
	ErrOrderNotFound    = newError(ErrNotFound, "order.not_found")
	ErrItemNotFound     = newError(ErrNotFound, "order_item.not_found")
	ErrMenuItemNotFound = newError(ErrNotFound, "menu_item.not_found")
	ErrOptionNotFound   = newError(ErrNotFound, "option.not_found")

	ErrOrderFinished   = newError(ErrInvalidTransition, "order.finished")
	ErrOrderNotDraft   = newError(ErrInvalidTransition, "order.not_draft")
	ErrOrderNotServing = newError(ErrInvalidTransition, "order.not_serving")
	ErrItemFinished    = newError(ErrInvalidTransition, "order_item.finished")
	ErrItemTransition  = newError(ErrInvalidTransition, "order_item.invalid_transition")

	ErrInvalidOrderType   = newError(ErrValidationFailed, "order.invalid_type")
	ErrTableRequired      = newError(ErrValidationFailed, "order.table_required")
	ErrTableNotAllowed    = newError(ErrValidationFailed, "order.table_not_allowed")
	ErrNoItems            = newError(ErrValidationFailed, "order.no_items")
	ErrReasonRequired     = newError(ErrValidationFailed, "order.reason_required")
	ErrInvalidQuantity    = newError(ErrValidationFailed, "order_item.invalid_quantity")
	ErrInvalidItemStatus  = newError(ErrValidationFailed, "order_item.invalid_status")
	ErrMenuItemOutOfStock = newError(ErrValidationFailed, "menu_item.out_of_stock")
	ErrOptionUnavailable  = newError(ErrValidationFailed, "option.unavailable")
	ErrOptionSelection    = newError(ErrValidationFailed, "option.invalid_selection")

	ErrMissingActor = newError(ErrUnauthorized, "auth.missing_actor")

	ErrTableOccupied          = newError(ErrConflict, "table.occupied")
	ErrConcurrentModification = newError(ErrConflict, "order.concurrent_modification")
	ErrDuplicateOrderCode     = newError(ErrConflict, "order.duplicate_code")
	ErrCodeGenerationConflict = newError(ErrConflict, "order.code_generation_conflict")

	ErrStorage = newError(ErrPersistenceFailure, "storage.failure")
)

// CodeOf returns the stable code of err, or "internal" for errors outside the taxonomy.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "internal"
}

// KindOf returns the category sentinel err belongs to, or nil.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrNotFound, ErrInvalidTransition, ErrValidationFailed,
		ErrUnauthorized, ErrConflict, ErrPersistenceFailure,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
