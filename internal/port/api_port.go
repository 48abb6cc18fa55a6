package port

import (
	"context"

	"github.com/nikolayk812/shopledger/internal/domain"
)

type CatalogAPI interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest, idempotencyKey string) (domain.Order, error)
}

type PaymentAPI interface {
	CreatePaymentSession(ctx context.Context, orderID string, amount domain.Money, idempotencyKey string) (domain.PaymentSession, error)
	ConfirmPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error)
	FailPayment(ctx context.Context, paymentIntentID, orderID string) (domain.Order, error)
}

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error)
	RefreshToken(ctx context.Context, token string) (domain.AuthResult, error)
}

type AdminAPI interface {
	ListProducts(ctx context.Context, filters domain.ProductFilters) (domain.ProductPage, error)
	DeleteProduct(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	BulkProducts(ctx context.Context, ids []string, action domain.ProductAction) ([]domain.Product, error)
	BulkOrders(ctx context.Context, ids []string, action domain.OrderAction) ([]domain.Order, error)
	BulkUsers(ctx context.Context, ids []string, action domain.UserAction) ([]domain.User, error)

	Analytics(ctx context.Context) (domain.AnalyticsStats, error)
	AuditLogs(ctx context.Context, filter domain.AuditLogFilter, page, pageSize int) (domain.AuditLogPage, error)
	SecurityChecks(ctx context.Context) ([]domain.SecurityCheck, error)
}
