package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nikolayk812/shopledger/internal/domain"
)

const defaultPageSize = 12

func (c *Client) ListProducts(ctx context.Context, filters domain.ProductFilters) (domain.ProductPage, error) {
	q := url.Values{}
	if filters.Category != "" {
		q.Set("category", filters.Category)
	}
	if filters.Brand != "" {
		q.Set("brand", filters.Brand)
	}
	if filters.MinPrice != nil {
		q.Set("minPrice", filters.MinPrice.String())
	}
	if filters.MaxPrice != nil {
		q.Set("maxPrice", filters.MaxPrice.String())
	}
	if filters.Sort != "" {
		q.Set("sort", string(filters.Sort))
	}

	page, limit := filters.Page, filters.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out domain.ProductPage
	err := c.do(ctx, request{op: "products.list", method: http.MethodGet, path: "/products", query: q}, &out)
	if err != nil {
		return domain.ProductPage{}, err
	}

	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var out domain.Product
	err := c.do(ctx, request{op: "products.get", method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &out)
	if err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, request{
		op:     "products.search",
		method: http.MethodGet,
		path:   "/products/search",
		query:  url.Values{"q": []string{query}},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, request{op: "products.create", method: http.MethodPost, path: "/products", body: p}, &out)
	if err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var out domain.Product
	err := c.do(ctx, request{op: "products.update", method: http.MethodPut, path: "/products/" + url.PathEscape(id), body: p}, &out)
	if err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	return c.do(ctx, request{op: "products.delete", method: http.MethodDelete, path: "/products/" + url.PathEscape(id)}, nil)
}
