package entities

import "github.com/shopspring/decimal"

// LineTotal is quantity * (unit price + sum(option extra * option quantity)).
// Cancelled and rejected items contribute zero.
func LineTotal(item OrderItem) decimal.Decimal {
	if item.Status.IsVoid() {
		return decimal.Zero
	}
	optionsSum := decimal.Zero
	for _, g := range item.OptionGroups {
		for _, v := range g.Values {
			optionsSum = optionsSum.Add(v.ExtraPrice.Mul(decimal.NewFromInt(int64(v.Quantity))))
		}
	}
	return decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice.Add(optionsSum))
}

func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(it))
	}
	return total
}
