package entities

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OptionSelection is a requested option value for a line.
type OptionSelection struct {
	OptionItemID uuid.UUID
	Quantity     int
	Note         string
}

// NormalizeSelections defaults a zero option quantity to 1 and rejects negative ones.
func NormalizeSelections(selections []OptionSelection) ([]OptionSelection, error) {
	out := make([]OptionSelection, 0, len(selections))
	for _, s := range selections {
		if s.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if s.Quantity == 0 {
			s.Quantity = 1
		}
		out = append(out, s)
	}
	return out, nil
}

// SelectionSignature flattens selections into a sorted "<option id>x<qty>" list,
// so that two lines with the same options compare equal regardless of order.
func SelectionSignature(selections []OptionSelection) string {
	pairs := make([]string, 0, len(selections))
	for _, s := range selections {
		pairs = append(pairs, s.OptionItemID.String()+"x"+strconv.Itoa(s.Quantity))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// OrderItemOptionValue is a frozen copy of a selected catalog option.
type OrderItemOptionValue struct {
	ID           uuid.UUID
	OptionItemID uuid.UUID
	Label        string
	ExtraPrice   decimal.Decimal
	Quantity     int
	Note         string
}

type OrderItemOptionGroup struct {
	ID            uuid.UUID
	OptionGroupID uuid.UUID
	Name          string
	Type          OptionGroupType
	Values        []OrderItemOptionValue
}

// OrderItem is a line of an order. Code, name, unit price and station are
// snapshots taken when the line was created.
type OrderItem struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	MenuItemID uuid.UUID

	ItemCode  string
	ItemName  string
	UnitPrice decimal.Decimal
	Station   string

	Status   ItemStatus
	Quantity int
	Note     string

	OptionGroups []OrderItemOptionGroup

	CancelReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
}

// NewOrderItem snapshots menu and the selected options into a new Preparing line.
// options must contain every option item referenced by selections.
func NewOrderItem(
	orderID uuid.UUID,
	orderType OrderType,
	menu MenuItem,
	quantity int,
	note string,
	selections []OptionSelection,
	options map[uuid.UUID]OptionItem,
	now time.Time,
) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	if menu.IsOutOfStock {
		return OrderItem{}, ErrMenuItemOutOfStock
	}
	note = strings.TrimSpace(note)
	selections, err := NormalizeSelections(selections)
	if err != nil {
		return OrderItem{}, err
	}
	groups, err := snapshotOptions(menu.ID, selections, options)
	if err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		ID:           uuid.New(),
		OrderID:      orderID,
		MenuItemID:   menu.ID,
		ItemCode:     menu.Code,
		ItemName:     menu.Name,
		UnitPrice:    menu.PriceFor(orderType),
		Station:      menu.Station,
		Status:       ItemStatusPreparing,
		Quantity:     quantity,
		Note:         note,
		OptionGroups: groups,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func snapshotOptions(menuItemID uuid.UUID, selections []OptionSelection, options map[uuid.UUID]OptionItem) ([]OrderItemOptionGroup, error) {
	var groups []OrderItemOptionGroup
	index := make(map[uuid.UUID]int)
	seen := make(map[uuid.UUID]bool)

	for _, sel := range selections {
		opt, ok := options[sel.OptionItemID]
		if !ok || opt.Group.MenuItemID != menuItemID {
			return nil, ErrOptionNotFound
		}
		if !opt.IsAvailable {
			return nil, ErrOptionUnavailable
		}
		if seen[opt.ID] {
			return nil, ErrOptionSelection
		}
		seen[opt.ID] = true

		i, ok := index[opt.Group.ID]
		if !ok {
			groups = append(groups, OrderItemOptionGroup{
				ID:            uuid.New(),
				OptionGroupID: opt.Group.ID,
				Name:          opt.Group.Name,
				Type:          opt.Group.Type,
			})
			i = len(groups) - 1
			index[opt.Group.ID] = i
		}

		g := &groups[i]
		if g.Type == OptionGroupSingle && len(g.Values) > 0 {
			return nil, ErrOptionSelection
		}
		g.Values = append(g.Values, OrderItemOptionValue{
			ID:           uuid.New(),
			OptionItemID: opt.ID,
			Label:        opt.Label,
			ExtraPrice:   opt.ExtraPrice,
			Quantity:     sel.Quantity,
			Note:         sel.Note,
		})
	}
	return groups, nil
}

func (i *OrderItem) IsFinished() bool {
	return i.Status.IsFinished()
}

// Selections flattens the option snapshots back into selections.
func (i *OrderItem) Selections() []OptionSelection {
	var out []OptionSelection
	for _, g := range i.OptionGroups {
		for _, v := range g.Values {
			out = append(out, OptionSelection{OptionItemID: v.OptionItemID, Quantity: v.Quantity, Note: v.Note})
		}
	}
	return out
}

// SameLine reports whether a request for menuItemID/note/signature targets this line.
func (i *OrderItem) SameLine(menuItemID uuid.UUID, note, signature string) bool {
	return i.MenuItemID == menuItemID &&
		i.Note == note &&
		SelectionSignature(i.Selections()) == signature
}

// Cancel moves a Preparing, Cooking or Ready item to Cancelled and reports whether it changed.
// Any other state is left as is.
func (i *OrderItem) Cancel(reason string, now time.Time) bool {
	switch i.Status {
	case ItemStatusPreparing, ItemStatusCooking, ItemStatusReady:
		i.Status = ItemStatusCancelled
		i.CancelReason = reason
		i.CancelledAt = &now
		i.UpdatedAt = now
		return true
	}
	return false
}

// Advance applies a kitchen status change.
func (i *OrderItem) Advance(to ItemStatus, now time.Time) error {
	if i.IsFinished() {
		return ErrItemFinished
	}
	if !CanTransitionItem(i.Status, to) {
		return ErrItemTransition
	}
	i.Status = to
	i.UpdatedAt = now
	if to == ItemStatusCompleted {
		i.CompletedAt = &now
	}
	return nil
}
