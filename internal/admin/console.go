// Package admin keeps the back-office view of products, orders and users in
// sync with the remote API. Every call records its failure, if any, in Err.
package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/rs/zerolog/log"
)

type Console struct {
	api port.AdminAPI

	mu        sync.Mutex
	products  *List[domain.Product]
	orders    *List[domain.Order]
	users     *List[domain.User]
	isLoading bool
	err       error
}

func NewConsole(api port.AdminAPI) *Console {
	return &Console{
		api:      api,
		products: NewList(func(p domain.Product) string { return p.ID }),
		orders:   NewList(func(o domain.Order) string { return o.ID }),
		users:    NewList(func(u domain.User) string { return u.ID }),
	}
}

func (c *Console) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products.All()
}

func (c *Console) Orders() []domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders.All()
}

func (c *Console) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users.All()
}

// Err is the failure of the most recent call, nil after a success.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Console) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isLoading
}

func (c *Console) LoadProducts(ctx context.Context, filters domain.ProductFilters) error {
	return run(c, ctx, "api.ListProducts", func() (domain.ProductPage, error) {
		return c.api.ListProducts(ctx, filters)
	}, func(page domain.ProductPage) {
		c.products.Replace(page.Products)
	})
}

// LoadAllProducts walks every page of the catalog and replaces the product
// list with the result.
func (c *Console) LoadAllProducts(ctx context.Context, pageSize int) error {
	return run(c, ctx, "api.ListProducts", func() ([]domain.Product, error) {
		var all []domain.Product
		for page := 1; ; page++ {
			res, err := c.api.ListProducts(ctx, domain.ProductFilters{Page: page, Limit: pageSize})
			if err != nil {
				return nil, err
			}
			all = append(all, res.Products...)

			if page >= res.TotalPages || len(res.Products) == 0 {
				return all, nil
			}
		}
	}, c.products.Replace)
}

func (c *Console) LoadOrders(ctx context.Context) error {
	return run(c, ctx, "api.ListOrders", func() ([]domain.Order, error) {
		return c.api.ListOrders(ctx)
	}, c.orders.Replace)
}

func (c *Console) LoadUsers(ctx context.Context) error {
	return run(c, ctx, "api.ListUsers", func() ([]domain.User, error) {
		return c.api.ListUsers(ctx)
	}, c.users.Replace)
}

// BulkProducts applies action to the selected products. The server's
// response becomes the new product list.
func (c *Console) BulkProducts(ctx context.Context, ids []string, action domain.ProductAction) error {
	return run(c, ctx, "api.BulkProducts", func() ([]domain.Product, error) {
		return c.api.BulkProducts(ctx, ids, action)
	}, c.products.Replace)
}

func (c *Console) BulkOrders(ctx context.Context, ids []string, action domain.OrderAction) error {
	return run(c, ctx, "api.BulkOrders", func() ([]domain.Order, error) {
		return c.api.BulkOrders(ctx, ids, action)
	}, c.orders.Replace)
}

func (c *Console) BulkUsers(ctx context.Context, ids []string, action domain.UserAction) error {
	return run(c, ctx, "api.BulkUsers", func() ([]domain.User, error) {
		return c.api.BulkUsers(ctx, ids, action)
	}, c.users.Replace)
}

func (c *Console) UpdateUser(ctx context.Context, id string, user domain.User) error {
	return run(c, ctx, "api.UpdateUser", func() (domain.User, error) {
		return c.api.UpdateUser(ctx, id, user)
	}, c.users.Upsert)
}

func (c *Console) DeleteUser(ctx context.Context, id string) error {
	return run(c, ctx, "api.DeleteUser", func() (struct{}, error) {
		return struct{}{}, c.api.DeleteUser(ctx, id)
	}, func(struct{}) {
		c.users.Remove(id)
	})
}

func (c *Console) DeleteProduct(ctx context.Context, id string) error {
	return run(c, ctx, "api.DeleteProduct", func() (struct{}, error) {
		return struct{}{}, c.api.DeleteProduct(ctx, id)
	}, func(struct{}) {
		c.products.Remove(id)
	})
}

func (c *Console) Analytics(ctx context.Context) (domain.AnalyticsStats, error) {
	var stats domain.AnalyticsStats
	err := run(c, ctx, "api.Analytics", func() (domain.AnalyticsStats, error) {
		return c.api.Analytics(ctx)
	}, func(s domain.AnalyticsStats) {
		stats = s
	})
	return stats, err
}

func (c *Console) AuditLogs(ctx context.Context, filter domain.AuditLogFilter, page, pageSize int) (domain.AuditLogPage, error) {
	var logs domain.AuditLogPage
	err := run(c, ctx, "api.AuditLogs", func() (domain.AuditLogPage, error) {
		return c.api.AuditLogs(ctx, filter, page, pageSize)
	}, func(p domain.AuditLogPage) {
		logs = p
	})
	return logs, err
}

func (c *Console) SecurityChecks(ctx context.Context) ([]domain.SecurityCheck, error) {
	var checks []domain.SecurityCheck
	err := run(c, ctx, "api.SecurityChecks", func() ([]domain.SecurityCheck, error) {
		return c.api.SecurityChecks(ctx)
	}, func(cs []domain.SecurityCheck) {
		checks = cs
	})
	return checks, err
}

// run performs the remote call outside the lock and applies its result under
// it. A failed call leaves the lists untouched.
func run[T any](c *Console, ctx context.Context, op string, call func() (T, error), apply func(T)) error {
	c.mu.Lock()
	c.isLoading = true
	c.err = nil
	c.mu.Unlock()

	res, err := call()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.isLoading = false
	if err != nil {
		c.err = fmt.Errorf("%s: %w", op, err)
		log.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("admin call failed")
		return c.err
	}

	apply(res)

	return nil
}
