package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nikolayk812/shopledger/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, request{op: "users.list", method: http.MethodGet, path: "/users"}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	var out domain.User
	if err := c.do(ctx, request{op: "users.get", method: http.MethodGet, path: "/users/" + url.PathEscape(id)}, &out); err != nil {
		return domain.User{}, err
	}

	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user domain.User) (domain.User, error) {
	if id == "" {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	var out domain.User
	err := c.do(ctx, request{op: "users.update", method: http.MethodPut, path: "/users/" + url.PathEscape(id), body: user}, &out)
	if err != nil {
		return domain.User{}, err
	}

	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	return c.do(ctx, request{op: "users.delete", method: http.MethodDelete, path: "/users/" + url.PathEscape(id)}, nil)
}
