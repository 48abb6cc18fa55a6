package storefront_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/ledger"
	"github.com/nikolayk812/shopledger/internal/storage"
	"github.com/nikolayk812/shopledger/internal/storefront"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

type fakeAPI struct {
	products map[string]domain.Product

	createErr  error
	sessionErr error
	confirmErr error

	orders   []domain.CreateOrderRequest
	keys     []string
	sessions []domain.Money
}

func (f *fakeAPI) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("products.get: status 404: product not found")
	}
	return p, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, req domain.CreateOrderRequest, key string) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	f.orders = append(f.orders, req)
	f.keys = append(f.keys, key)
	return domain.Order{ID: "o1", Items: req.Items, Status: domain.OrderPending}, nil
}

func (f *fakeAPI) CreatePaymentSession(_ context.Context, orderID string, amount domain.Money, key string) (domain.PaymentSession, error) {
	if f.sessionErr != nil {
		return domain.PaymentSession{}, f.sessionErr
	}
	f.sessions = append(f.sessions, amount)
	f.keys = append(f.keys, key)
	return domain.PaymentSession{ID: "s1", PaymentIntentID: "pi_1", OrderID: orderID, Amount: amount}, nil
}

func (f *fakeAPI) ConfirmPayment(_ context.Context, _, orderID string) (domain.Order, error) {
	if f.confirmErr != nil {
		return domain.Order{}, f.confirmErr
	}
	return domain.Order{ID: orderID, Status: domain.OrderProcessing}, nil
}

func (f *fakeAPI) FailPayment(_ context.Context, _, orderID string) (domain.Order, error) {
	return domain.Order{ID: orderID, Status: domain.OrderCancelled}, nil
}

func newService(api *fakeAPI) *storefront.Service {
	store := storage.NewMemory()
	return storefront.New(api, ledger.NewCart(store), ledger.NewWishlist(store), currency.USD)
}

func catalog() map[string]domain.Product {
	return map[string]domain.Product{
		"p1": {ID: "p1", Name: "Desk", Price: decimal.NewFromInt(200), Discount: decimal.NewFromInt(10), Images: []string{"desk.png"}},
		"p2": {ID: "p2", Name: "Pen", Price: decimal.RequireFromString("1.5"), Discount: decimal.Zero},
	}
}

func TestService_AddToCart(t *testing.T) {
	ctx := t.Context()
	svc := newService(&fakeAPI{products: catalog()})

	require.NoError(t, svc.AddToCart(ctx, "p1", 2))
	require.NoError(t, svc.AddToCart(ctx, "p1", 1))

	state := svc.Cart().State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, "desk.png", state.Items[0].ImageRef)
	assert.True(t, decimal.NewFromInt(600).Equal(state.GrossTotal))
	assert.True(t, decimal.NewFromInt(540).Equal(state.NetTotal))
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Error)

	err := svc.AddToCart(ctx, "missing", 1)
	require.ErrorContains(t, err, "api.GetProduct")

	state = svc.Cart().State()
	require.NotNil(t, state.Error)
	assert.Equal(t, "could not add product missing to cart", *state.Error)
	assert.Equal(t, 3, state.TotalItems)

	err = svc.AddToCart(ctx, "p2", 0)
	require.ErrorIs(t, err, storefront.ErrInvalidQuantity)
	require.EqualError(t, err, "quantity[0]: quantity must be at least 1")
}

func TestService_Wishlist(t *testing.T) {
	ctx := t.Context()
	svc := newService(&fakeAPI{products: catalog()})

	require.NoError(t, svc.AddToWishlist(ctx, "p2"))
	require.NoError(t, svc.AddToWishlist(ctx, "p2"))
	assert.Len(t, svc.Wishlist().Items(), 1)

	require.Error(t, svc.AddToWishlist(ctx, "missing"))
	assert.NotNil(t, svc.Wishlist().State().Error)

	assert.False(t, svc.MoveToCart("missing"))
	assert.True(t, svc.MoveToCart("p2"))

	assert.Empty(t, svc.Wishlist().Items())
	item, ok := svc.Cart().Item("p2")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
}

func TestService_Checkout(t *testing.T) {
	ctx := t.Context()

	t.Run("empty cart", func(t *testing.T) {
		svc := newService(&fakeAPI{})
		_, err := svc.Checkout(ctx, domain.Address{}, "credit-card")
		require.ErrorIs(t, err, storefront.ErrEmptyCart)
	})

	t.Run("order and payment session for the net total", func(t *testing.T) {
		api := &fakeAPI{products: catalog()}
		svc := newService(api)
		require.NoError(t, svc.AddToCart(ctx, "p1", 1))
		require.NoError(t, svc.AddToCart(ctx, "p2", 4))

		res, err := svc.Checkout(ctx, domain.Address{City: "Berlin"}, "credit-card")
		require.NoError(t, err)

		assert.Equal(t, "o1", res.Order.ID)
		assert.Equal(t, "pi_1", res.Payment.PaymentIntentID)

		require.Len(t, api.orders, 1)
		assert.Equal(t, "Berlin", api.orders[0].ShippingAddress.City)
		require.Len(t, api.orders[0].Items, 2)
		assert.Equal(t, "p2", api.orders[0].Items[1].ProductID)
		assert.Equal(t, 4, api.orders[0].Items[1].Quantity)

		require.Len(t, api.sessions, 1)
		assert.True(t, decimal.NewFromInt(186).Equal(api.sessions[0].Amount), "amount: %s", api.sessions[0])
		assert.Equal(t, "USD", api.sessions[0].Currency.String())

		// order and payment share one idempotency key
		require.Len(t, api.keys, 2)
		assert.NotEmpty(t, api.keys[0])
		assert.Equal(t, api.keys[0], api.keys[1])

		// the cart is kept until payment is confirmed
		assert.Len(t, svc.Cart().Items(), 2)

		order, err := svc.ConfirmPayment(ctx, res.Payment.PaymentIntentID, res.Order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderProcessing, order.Status)
		assert.Empty(t, svc.Cart().Items())
		assert.Zero(t, svc.Cart().Totals().TotalItems)
	})

	t.Run("order failure keeps the cart", func(t *testing.T) {
		api := &fakeAPI{products: catalog(), createErr: errors.New("boom")}
		svc := newService(api)
		require.NoError(t, svc.AddToCart(ctx, "p1", 1))

		_, err := svc.Checkout(ctx, domain.Address{}, "credit-card")
		require.ErrorContains(t, err, "api.CreateOrder: boom")

		state := svc.Cart().State()
		assert.Len(t, state.Items, 1)
		require.NotNil(t, state.Error)
		assert.Equal(t, "failed to place order", *state.Error)
		assert.False(t, state.IsLoading)
	})

	t.Run("confirm failure keeps the cart", func(t *testing.T) {
		api := &fakeAPI{products: catalog(), confirmErr: errors.New("declined")}
		svc := newService(api)
		require.NoError(t, svc.AddToCart(ctx, "p1", 1))

		_, err := svc.ConfirmPayment(ctx, "pi_1", "o1")
		require.ErrorContains(t, err, "declined")
		assert.Len(t, svc.Cart().Items(), 1)
	})

	t.Run("failed payment is recorded", func(t *testing.T) {
		svc := newService(&fakeAPI{products: catalog()})
		require.NoError(t, svc.AddToCart(ctx, "p1", 1))

		order, err := svc.FailPayment(ctx, "pi_1", "o1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, order.Status)
		assert.Equal(t, "payment failed", *svc.Cart().State().Error)
		assert.Len(t, svc.Cart().Items(), 1)
	})
}
