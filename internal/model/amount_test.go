package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func item(qty int, price string) ImportOrderItem {
	return ImportOrderItem{QuantityOrdered: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestCalculateTotalAmount(t *testing.T) {
	cases := []struct {
		name  string
		items []ImportOrderItem
		want  string
	}{
		{"empty", nil, "0"},
		{"single", []ImportOrderItem{item(3, "12.25")}, "36.75"},
		{"mixed", []ImportOrderItem{item(10, "100.50"), item(5, "200.00")}, "2005"},
		{"free items", []ImportOrderItem{item(4, "0"), item(1, "0.10")}, "0.1"},
		{"no float drift", []ImportOrderItem{item(1, "0.10"), item(1, "0.20")}, "0.3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTotalAmount(tc.items)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("total = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCalculateFinalAmountPassesThrough(t *testing.T) {
	for _, v := range []string{"0", "2005.00", "123456789.99"} {
		total := decimal.RequireFromString(v)
		if got := CalculateFinalAmount(total); !got.Equal(total) {
			t.Errorf("final(%s) = %s", v, got)
		}
	}
}

func TestApplyTotals(t *testing.T) {
	order := ImportOrder{TotalAmount: decimal.NewFromInt(999)}
	order.ApplyTotals([]ImportOrderItem{item(10, "100.50"), item(5, "200.00")})

	if order.TotalAmount.StringFixed(2) != "2005.00" {
		t.Errorf("total = %s", order.TotalAmount.StringFixed(2))
	}
	if !order.FinalAmount.Equal(order.TotalAmount) {
		t.Errorf("final %s != total %s", order.FinalAmount, order.TotalAmount)
	}
}

func TestLineTotal(t *testing.T) {
	if got := item(7, "1.5").LineTotal(); !got.Equal(decimal.RequireFromString("10.5")) {
		t.Errorf("line total = %s", got)
	}
}
