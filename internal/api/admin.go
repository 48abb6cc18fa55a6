package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nikolayk812/shopledger/internal/domain"
)

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action"`
}

// BulkProducts applies action to the products with the given ids and returns
// the updated product list.
func (c *Client) BulkProducts(ctx context.Context, ids []string, action domain.ProductAction) ([]domain.Product, error) {
	if err := checkBulk(ids, action.IsZero()); err != nil {
		return nil, err
	}

	var out []domain.Product
	err := c.do(ctx, request{
		op:     "admin.products.bulk",
		method: http.MethodPatch,
		path:   "/admin/products",
		body:   bulkRequest{IDs: ids, Action: action.String()},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) BulkOrders(ctx context.Context, ids []string, action domain.OrderAction) ([]domain.Order, error) {
	if err := checkBulk(ids, action.IsZero()); err != nil {
		return nil, err
	}

	var out []domain.Order
	err := c.do(ctx, request{
		op:     "admin.orders.bulk",
		method: http.MethodPatch,
		path:   "/admin/orders",
		body:   bulkRequest{IDs: ids, Action: action.String()},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) BulkUsers(ctx context.Context, ids []string, action domain.UserAction) ([]domain.User, error) {
	if err := checkBulk(ids, action.IsZero()); err != nil {
		return nil, err
	}

	var out []domain.User
	err := c.do(ctx, request{
		op:     "admin.users.bulk",
		method: http.MethodPatch,
		path:   "/admin/users",
		body:   bulkRequest{IDs: ids, Action: action.String()},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkBulk(ids []string, zeroAction bool) error {
	if zeroAction {
		return fmt.Errorf("action is empty")
	}
	if len(ids) == 0 {
		return fmt.Errorf("ids are empty")
	}
	return nil
}

func (c *Client) Analytics(ctx context.Context) (domain.AnalyticsStats, error) {
	var out domain.AnalyticsStats
	if err := c.do(ctx, request{op: "analytics.get", method: http.MethodGet, path: "/analytics"}, &out); err != nil {
		return domain.AnalyticsStats{}, err
	}

	return out, nil
}

func (c *Client) AuditLogs(ctx context.Context, filter domain.AuditLogFilter, page, pageSize int) (domain.AuditLogPage, error) {
	q := url.Values{}
	for k, v := range map[string]string{
		"startDate": filter.StartDate,
		"endDate":   filter.EndDate,
		"user":      filter.User,
		"action":    filter.Action,
		"resource":  filter.Resource,
		"status":    filter.Status,
		"search":    filter.Search,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	var out domain.AuditLogPage
	if err := c.do(ctx, request{op: "audit.list", method: http.MethodGet, path: "/audit/logs", query: q}, &out); err != nil {
		return domain.AuditLogPage{}, err
	}

	return out, nil
}

func (c *Client) ClearAuditLogs(ctx context.Context) error {
	return c.do(ctx, request{op: "audit.clear", method: http.MethodDelete, path: "/audit/logs"}, nil)
}

func (c *Client) SecurityChecks(ctx context.Context) ([]domain.SecurityCheck, error) {
	var out []domain.SecurityCheck
	if err := c.do(ctx, request{op: "security.audit", method: http.MethodGet, path: "/security/audit"}, &out); err != nil {
		return nil, err
	}

	return out, nil
}
