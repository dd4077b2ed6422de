package entities

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeTakeaway OrderType = "TAKEAWAY"
)

func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(s); t {
	case OrderTypeDineIn, OrderTypeTakeaway:
		return t, nil
	}
	return "", ErrInvalidOrderType
}

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusServing   OrderStatus = "SERVING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type ItemStatus string

const (
	ItemStatusPreparing ItemStatus = "PREPARING"
	ItemStatusCooking   ItemStatus = "COOKING"
	ItemStatusReady     ItemStatus = "READY"
	ItemStatusCompleted ItemStatus = "COMPLETED"
	ItemStatusCancelled ItemStatus = "CANCELLED"
	ItemStatusRejected  ItemStatus = "REJECTED"
)

// itemNext lists the kitchen-driven forward moves. Cancelled is reached only through Cancel.
var itemNext = map[ItemStatus]map[ItemStatus]bool{
	ItemStatusPreparing: {ItemStatusCooking: true, ItemStatusRejected: true},
	ItemStatusCooking:   {ItemStatusReady: true, ItemStatusRejected: true},
	ItemStatusReady:     {ItemStatusCompleted: true, ItemStatusRejected: true},
	ItemStatusCompleted: {},
	ItemStatusCancelled: {},
	ItemStatusRejected:  {},
}

func ParseItemStatus(s string) (ItemStatus, error) {
	st := ItemStatus(s)
	if _, ok := itemNext[st]; !ok {
		return "", ErrInvalidItemStatus
	}
	return st, nil
}

func CanTransitionItem(from, to ItemStatus) bool {
	return itemNext[from][to]
}

// IsFinished reports whether no further kitchen work is expected for the item.
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusCompleted || s == ItemStatusCancelled || s == ItemStatusRejected
}

// IsVoid reports whether the item is excluded from the order total.
func (s ItemStatus) IsVoid() bool {
	return s == ItemStatusCancelled || s == ItemStatusRejected
}

type OptionGroupType string

const (
	OptionGroupSingle   OptionGroupType = "SINGLE"
	OptionGroupMultiple OptionGroupType = "MULTIPLE"
)

func ParseOptionGroupType(s string) (OptionGroupType, error) {
	switch t := OptionGroupType(s); t {
	case OptionGroupSingle, OptionGroupMultiple:
		return t, nil
	}
	return "", ErrOptionSelection
}
