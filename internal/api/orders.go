package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nikolayk812/shopledger/internal/domain"
)

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, request{op: "orders.list", method: http.MethodGet, path: "/orders"}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	var out domain.Order
	if err := c.do(ctx, request{op: "orders.get", method: http.MethodGet, path: "/orders/" + url.PathEscape(id)}, &out); err != nil {
		return domain.Order{}, err
	}

	return out, nil
}

// CreateOrder submits a new order. The idempotency key lets the server drop
// retried submissions of the same checkout.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, idempotencyKey string) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items")
	}

	var out domain.Order
	err := c.do(ctx, request{
		op:             "orders.create",
		method:         http.MethodPost,
		path:           "/orders",
		body:           req,
		idempotencyKey: idempotencyKey,
	}, &out)
	if err != nil {
		return domain.Order{}, err
	}

	return out, nil
}

func (c *Client) CancelOrder(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	return c.do(ctx, request{op: "orders.cancel", method: http.MethodPut, path: "/orders/" + url.PathEscape(id) + "/cancel"}, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	return c.do(ctx, request{
		op:     "orders.status",
		method: http.MethodPut,
		path:   "/orders/" + url.PathEscape(id) + "/status",
		body:   map[string]domain.OrderStatus{"status": status},
	}, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	return c.do(ctx, request{op: "orders.delete", method: http.MethodDelete, path: "/orders/" + url.PathEscape(id)}, nil)
}
