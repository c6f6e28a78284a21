package model

import "github.com/shopspring/decimal"

// CalculateTotalAmount sums quantity_ordered * unit_price over items
func CalculateTotalAmount(items []ImportOrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CalculateFinalAmount derives the payable amount from the total.
// No discount or tax applies yet, so it passes the total through.
func CalculateFinalAmount(totalAmount decimal.Decimal) decimal.Decimal {
	return totalAmount
}
