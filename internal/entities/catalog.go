package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID            uuid.UUID
	Code          string
	Name          string
	PriceDineIn   decimal.Decimal
	PriceTakeAway decimal.NullDecimal
	Station       string
	IsOutOfStock  bool
}

// PriceFor picks the unit price for the order type. Take-away falls back to the dine-in price.
func (m MenuItem) PriceFor(t OrderType) decimal.Decimal {
	if t == OrderTypeTakeaway && m.PriceTakeAway.Valid {
		return m.PriceTakeAway.Decimal
	}
	return m.PriceDineIn
}

type OptionGroup struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	Name       string
	Type       OptionGroupType
}

type OptionItem struct {
	ID          uuid.UUID
	Group       OptionGroup
	Label       string
	ExtraPrice  decimal.Decimal
	IsAvailable bool
}
