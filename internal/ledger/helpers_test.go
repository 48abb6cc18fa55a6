package ledger_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func randomItem() domain.Item {
	return domain.Item{
		ID:              gofakeit.UUID(),
		Name:            gofakeit.ProductName(),
		UnitPrice:       decimal.NewFromFloat(gofakeit.Price(1, 100)),
		DiscountPercent: decimal.NewFromInt(int64(gofakeit.IntRange(0, 100))),
		ImageRef:        gofakeit.URL(),
	}
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		Item:     randomItem(),
		Quantity: gofakeit.IntRange(1, 5),
	}
}

func cartItem(id string, price, discount string, qty int) domain.CartItem {
	return domain.CartItem{
		Item: domain.Item{
			ID:              id,
			Name:            "item " + id,
			UnitPrice:       decimal.RequireFromString(price),
			DiscountPercent: decimal.RequireFromString(discount),
		},
		Quantity: qty,
	}
}

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func assertCartState(t *testing.T, expected, actual domain.CartState) {
	t.Helper()

	opts := cmp.Options{
		decimalComparer,
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func assertWishlistState(t *testing.T, expected, actual domain.WishlistState) {
	t.Helper()

	diff := cmp.Diff(expected, actual, decimalComparer, cmpopts.EquateEmpty())
	assert.Empty(t, diff)
}

func ptr[T any](v T) *T {
	return &v
}
