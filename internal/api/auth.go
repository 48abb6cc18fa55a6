package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nikolayk812/shopledger/internal/domain"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, request{op: "auth.login", method: http.MethodPost, path: "/auth/login", body: creds, skipAuth: true}, &out)
	if err != nil {
		if IsUnauthorized(err) {
			return domain.AuthResult{}, fmt.Errorf("invalid email or password: %w", err)
		}
		return domain.AuthResult{}, err
	}

	if err := checkAuthResult(out); err != nil {
		return domain.AuthResult{}, err
	}

	return out, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	if reg.Password != reg.ConfirmPassword {
		return domain.AuthResult{}, fmt.Errorf("passwords do not match")
	}

	var out domain.AuthResult
	err := c.do(ctx, request{op: "auth.register", method: http.MethodPost, path: "/auth/register", body: reg, skipAuth: true}, &out)
	if err != nil {
		return domain.AuthResult{}, err
	}

	if err := checkAuthResult(out); err != nil {
		return domain.AuthResult{}, err
	}

	return out, nil
}

func (c *Client) RefreshToken(ctx context.Context, token string) (domain.AuthResult, error) {
	if token == "" {
		return domain.AuthResult{}, fmt.Errorf("token is empty")
	}

	var out domain.AuthResult
	err := c.do(ctx, request{
		op:       "auth.refresh",
		method:   http.MethodPost,
		path:     "/auth/refresh-token",
		body:     map[string]string{"token": token},
		skipAuth: true,
	}, &out)
	if err != nil {
		return domain.AuthResult{}, err
	}

	if err := checkAuthResult(out); err != nil {
		return domain.AuthResult{}, err
	}

	return out, nil
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, request{op: "auth.me", method: http.MethodGet, path: "/auth/me"}, &out); err != nil {
		return domain.User{}, err
	}

	return out, nil
}

func checkAuthResult(res domain.AuthResult) error {
	if res.Token == "" {
		return errors.New("invalid token response")
	}
	return nil
}
