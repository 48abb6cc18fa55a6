package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/shopledger/internal/admin"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminAPI struct {
	products []domain.Product
	orders   []domain.Order
	users    []domain.User
	err      error

	bulkIDs    []string
	bulkAction string
}

func (f *fakeAdminAPI) ListProducts(_ context.Context, filters domain.ProductFilters) (domain.ProductPage, error) {
	if filters.Limit <= 0 {
		return domain.ProductPage{Products: f.products, Total: len(f.products), TotalPages: 1}, f.err
	}

	start := min((filters.Page-1)*filters.Limit, len(f.products))
	end := min(start+filters.Limit, len(f.products))

	return domain.ProductPage{
		Products:   f.products[start:end],
		Total:      len(f.products),
		Page:       filters.Page,
		TotalPages: (len(f.products) + filters.Limit - 1) / filters.Limit,
	}, f.err
}

func (f *fakeAdminAPI) DeleteProduct(context.Context, string) error { return f.err }

func (f *fakeAdminAPI) ListOrders(context.Context) ([]domain.Order, error) {
	return f.orders, f.err
}

func (f *fakeAdminAPI) ListUsers(context.Context) ([]domain.User, error) {
	return f.users, f.err
}

func (f *fakeAdminAPI) UpdateUser(_ context.Context, id string, user domain.User) (domain.User, error) {
	user.ID = id
	return user, f.err
}

func (f *fakeAdminAPI) DeleteUser(context.Context, string) error { return f.err }

func (f *fakeAdminAPI) BulkProducts(_ context.Context, ids []string, action domain.ProductAction) ([]domain.Product, error) {
	f.bulkIDs, f.bulkAction = ids, action.String()
	return f.products, f.err
}

func (f *fakeAdminAPI) BulkOrders(_ context.Context, ids []string, action domain.OrderAction) ([]domain.Order, error) {
	f.bulkIDs, f.bulkAction = ids, action.String()
	return f.orders, f.err
}

func (f *fakeAdminAPI) BulkUsers(_ context.Context, ids []string, action domain.UserAction) ([]domain.User, error) {
	f.bulkIDs, f.bulkAction = ids, action.String()
	return f.users, f.err
}

func (f *fakeAdminAPI) Analytics(context.Context) (domain.AnalyticsStats, error) {
	return domain.AnalyticsStats{TotalOrders: len(f.orders)}, f.err
}

func (f *fakeAdminAPI) AuditLogs(_ context.Context, _ domain.AuditLogFilter, page, pageSize int) (domain.AuditLogPage, error) {
	return domain.AuditLogPage{Page: page, PageSize: pageSize}, f.err
}

func (f *fakeAdminAPI) SecurityChecks(context.Context) ([]domain.SecurityCheck, error) {
	return []domain.SecurityCheck{{ID: "tls", Status: domain.SecurityPass}}, f.err
}

func randomUser() domain.User {
	return domain.User{
		ID:     gofakeit.UUID(),
		Email:  gofakeit.Email(),
		Name:   gofakeit.Name(),
		Role:   domain.RoleUser,
		Status: domain.UserActive,
	}
}

func TestConsole_Users(t *testing.T) {
	ctx := t.Context()

	u1, u2 := randomUser(), randomUser()
	api := &fakeAdminAPI{users: []domain.User{u1, u2}}
	c := admin.NewConsole(api)

	require.NoError(t, c.LoadUsers(ctx))
	assert.Equal(t, []domain.User{u1, u2}, c.Users())

	u2.Name = "renamed"
	require.NoError(t, c.UpdateUser(ctx, u2.ID, u2))
	assert.Equal(t, "renamed", c.Users()[1].Name)

	require.NoError(t, c.DeleteUser(ctx, u1.ID))
	assert.Equal(t, []domain.User{u2}, c.Users())

	inactive := u2
	inactive.Status = domain.UserInactive
	api.users = []domain.User{inactive}

	require.NoError(t, c.BulkUsers(ctx, []string{u2.ID}, domain.UserDeactivate))
	assert.Equal(t, []string{u2.ID}, api.bulkIDs)
	assert.Equal(t, "deactivate", api.bulkAction)
	assert.Equal(t, []domain.User{inactive}, c.Users())
	assert.NoError(t, c.Err())
	assert.False(t, c.IsLoading())
}

func TestConsole_BulkReplacesList(t *testing.T) {
	ctx := t.Context()

	api := &fakeAdminAPI{
		products: []domain.Product{{ID: "p1"}, {ID: "p2"}},
		orders:   []domain.Order{{ID: "o1", Status: domain.OrderPending}},
	}
	c := admin.NewConsole(api)

	require.NoError(t, c.LoadProducts(ctx, domain.ProductFilters{}))
	require.NoError(t, c.LoadOrders(ctx))

	api.products = []domain.Product{{ID: "p2"}}
	require.NoError(t, c.BulkProducts(ctx, []string{"p1"}, domain.ProductDelete))
	assert.Equal(t, []domain.Product{{ID: "p2"}}, c.Products())
	assert.Equal(t, "delete", api.bulkAction)

	api.orders = []domain.Order{{ID: "o1", Status: domain.OrderShipped}}
	require.NoError(t, c.BulkOrders(ctx, []string{"o1"}, domain.OrderShip))
	assert.Equal(t, domain.OrderShipped, c.Orders()[0].Status)

	require.NoError(t, c.DeleteProduct(ctx, "p2"))
	assert.Empty(t, c.Products())
}

func TestConsole_FailureKeepsLists(t *testing.T) {
	ctx := t.Context()

	api := &fakeAdminAPI{orders: []domain.Order{{ID: "o1"}}}
	c := admin.NewConsole(api)
	require.NoError(t, c.LoadOrders(ctx))

	api.err = errors.New("status 500: boom")
	api.orders = nil

	err := c.BulkOrders(ctx, []string{"o1"}, domain.OrderCancel)
	require.ErrorContains(t, err, "api.BulkOrders: status 500: boom")
	assert.Equal(t, err, c.Err())
	assert.Len(t, c.Orders(), 1)

	api.err = nil
	require.NoError(t, c.LoadOrders(ctx))
	assert.NoError(t, c.Err())
}

func TestConsole_Reads(t *testing.T) {
	ctx := t.Context()

	c := admin.NewConsole(&fakeAdminAPI{orders: []domain.Order{{ID: "o1"}, {ID: "o2"}}})

	stats, err := c.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)

	logs, err := c.AuditLogs(ctx, domain.AuditLogFilter{Action: "login"}, 2, 25)
	require.NoError(t, err)
	assert.Equal(t, 2, logs.Page)
	assert.Equal(t, 25, logs.PageSize)

	checks, err := c.SecurityChecks(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, domain.SecurityPass, checks[0].Status)
}

func TestConsole_LoadAllProducts(t *testing.T) {
	ctx := t.Context()

	var products []domain.Product
	for range 5 {
		products = append(products, domain.Product{ID: gofakeit.UUID(), Name: gofakeit.ProductName()})
	}

	api := &fakeAdminAPI{products: products}
	c := admin.NewConsole(api)

	require.NoError(t, c.LoadAllProducts(ctx, 2))
	assert.Equal(t, products, c.Products())

	api.products = nil
	require.NoError(t, c.LoadAllProducts(ctx, 2))
	assert.Empty(t, c.Products())
}
