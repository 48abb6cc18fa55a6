package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nikolayk812/shopledger/internal/domain"
)

type paymentSessionRequest struct {
	OrderID string       `json:"orderId"`
	Amount  domain.Money `json:"amount"`
}

type paymentResultRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
}

func (c *Client) CreatePaymentSession(ctx context.Context, orderID string, amount domain.Money, idempotencyKey string) (domain.PaymentSession, error) {
	if orderID == "" {
		return domain.PaymentSession{}, fmt.Errorf("orderID is empty")
	}
	if !amount.Amount.IsPositive() {
		return domain.PaymentSession{}, fmt.Errorf("amount[%s] must be positive", amount)
	}

	var out domain.PaymentSession
	err := c.do(ctx, request{
		op:             "payment.session",
		method:         http.MethodPost,
		path:           "/payment/session",
		body:           paymentSessionRequest{OrderID: orderID, Amount: amount},
		idempotencyKey: idempotencyKey,
	}, &out)
	if err != nil {
		return domain.PaymentSession{}, err
	}

	return out, nil
}

// ConfirmPayment reports a completed payment; the returned order carries the
// transitioned status.
func (c *Client) ConfirmPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error) {
	return c.paymentResult(ctx, "payment.success", "/payment/success", paymentIntentID, orderID)
}

func (c *Client) FailPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error) {
	return c.paymentResult(ctx, "payment.failure", "/payment/failure", paymentIntentID, orderID)
}

func (c *Client) paymentResult(ctx context.Context, op, path, paymentIntentID, orderID string) (domain.Order, error) {
	if paymentIntentID == "" || orderID == "" {
		return domain.Order{}, fmt.Errorf("paymentIntentID and orderID are required")
	}

	var out domain.Order
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   path,
		body:   paymentResultRequest{PaymentIntentID: paymentIntentID, OrderID: orderID},
	}, &out)
	if err != nil {
		return domain.Order{}, err
	}

	return out, nil
}
