// Package storefront runs the shopper workflows that combine remote API calls
// with the cart and wishlist ledgers. Remote calls always complete before a
// ledger is mutated; failures are recorded in the ledger's error field.
package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/ledger"
	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type API interface {
	port.CatalogAPI
	port.OrderAPI
	port.PaymentAPI
}

type Service struct {
	api      API
	cart     *ledger.Cart
	wishlist *ledger.Wishlist
	currency currency.Unit
	newKey   func() string
}

func New(api API, cart *ledger.Cart, wishlist *ledger.Wishlist, unit currency.Unit) *Service {
	return &Service{
		api:      api,
		cart:     cart,
		wishlist: wishlist,
		currency: unit,
		newKey:   uuid.NewString,
	}
}

func (s *Service) Cart() *ledger.Cart {
	return s.cart
}

func (s *Service) Wishlist() *ledger.Wishlist {
	return s.wishlist
}

// AddToCart looks the product up and adds quantity units of it to the cart.
func (s *Service) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity[%d]: %w", quantity, ErrInvalidQuantity)
	}

	s.cart.SetLoading(true)
	defer s.cart.SetLoading(false)

	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		s.cart.SetError(fmt.Sprintf("could not add product %s to cart", productID))
		return fmt.Errorf("api.GetProduct: %w", err)
	}

	s.cart.ClearError()
	s.cart.AddItem(domain.CartItem{
		Item:     product.Item(),
		Quantity: quantity,
	})

	return nil
}

func (s *Service) AddToWishlist(ctx context.Context, productID string) error {
	s.wishlist.SetLoading(true)
	defer s.wishlist.SetLoading(false)

	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		s.wishlist.SetError(fmt.Sprintf("could not add product %s to wishlist", productID))
		return fmt.Errorf("api.GetProduct: %w", err)
	}

	s.wishlist.ClearError()
	s.wishlist.AddItem(domain.WishlistItem{Item: product.Item()})

	return nil
}

// MoveToCart adds one unit of a saved item to the cart and drops it from the
// wishlist. It reports false when the id is not on the wishlist.
func (s *Service) MoveToCart(id string) bool {
	item, ok := s.wishlist.Item(id)
	if !ok {
		return false
	}

	s.cart.AddItem(domain.CartItem{Item: item.Item, Quantity: 1})
	s.wishlist.RemoveItem(id)

	return true
}

type CheckoutResult struct {
	Order   domain.Order          `json:"order"`
	Payment domain.PaymentSession `json:"payment"`
}

// Checkout places an order for the cart contents and opens a payment session
// for the discounted total. The cart is kept until the payment is confirmed.
func (s *Service) Checkout(ctx context.Context, address domain.Address, paymentMethod string) (CheckoutResult, error) {
	state := s.cart.State()
	if len(state.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	s.cart.SetLoading(true)
	defer s.cart.SetLoading(false)

	items := make([]domain.OrderItem, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, domain.NewOrderItem(item))
	}

	checkoutKey := s.newKey()

	order, err := s.api.CreateOrder(ctx, domain.CreateOrderRequest{
		Items:           items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	}, checkoutKey)
	if err != nil {
		s.cart.SetError("failed to place order")
		return CheckoutResult{}, fmt.Errorf("api.CreateOrder: %w", err)
	}

	amount := domain.Money{Amount: state.NetTotal, Currency: s.currency}

	payment, err := s.api.CreatePaymentSession(ctx, order.ID, amount, checkoutKey)
	if err != nil {
		s.cart.SetError("failed to start payment")
		return CheckoutResult{}, fmt.Errorf("api.CreatePaymentSession: %w", err)
	}

	s.cart.ClearError()

	log.Ctx(ctx).Info().
		Str("order_id", order.ID).
		Str("amount", amount.String()).
		Int("items", state.TotalItems).
		Msg("checkout started")

	return CheckoutResult{Order: order, Payment: payment}, nil
}

// ConfirmPayment records a successful payment and empties the cart.
func (s *Service) ConfirmPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error) {
	order, err := s.api.ConfirmPayment(ctx, paymentIntentID, orderID)
	if err != nil {
		s.cart.SetError("failed to confirm payment")
		return domain.Order{}, fmt.Errorf("api.ConfirmPayment: %w", err)
	}

	s.cart.Clear()
	s.cart.ClearError()

	return order, nil
}

// FailPayment reports a failed payment. The cart keeps its items so the
// shopper can retry.
func (s *Service) FailPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error) {
	order, err := s.api.FailPayment(ctx, paymentIntentID, orderID)
	if err != nil {
		s.cart.SetError("failed to report payment failure")
		return domain.Order{}, fmt.Errorf("api.FailPayment: %w", err)
	}

	s.cart.SetError("payment failed")

	return order, nil
}
