package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Item is a catalog entry as captured at the time it was saved. Name and
// prices are not re-synced from the catalog afterwards.
type Item struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount"`
	ImageRef        string          `json:"image"`
}

// NetUnitPrice is the unit price after the percentage markdown.
func (i Item) NetUnitPrice() decimal.Decimal {
	return i.UnitPrice.Mul(hundred.Sub(i.DiscountPercent)).Div(hundred)
}

type CartItem struct {
	Item
	Quantity int `json:"quantity"`
}

type CartTotals struct {
	TotalItems int             `json:"totalItems"`
	GrossTotal decimal.Decimal `json:"totalPrice"`
	NetTotal   decimal.Decimal `json:"discountedTotal"`
}

type CartState struct {
	Items []CartItem `json:"items"`
	CartTotals
	IsLoading bool    `json:"isLoading"`
	Error     *string `json:"error"`
}

// ComputeCartTotals derives all cart totals from items by full traversal.
func ComputeCartTotals(items []CartItem) CartTotals {
	totals := CartTotals{
		GrossTotal: decimal.Zero,
		NetTotal:   decimal.Zero,
	}

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))

		totals.TotalItems += item.Quantity
		totals.GrossTotal = totals.GrossTotal.Add(item.UnitPrice.Mul(qty))
		totals.NetTotal = totals.NetTotal.Add(item.NetUnitPrice().Mul(qty))
	}

	return totals
}
