// Package session manages the shopper's authentication token: where it is
// stored, what its claims say, and how it is obtained and refreshed.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
)

const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

type Claims struct {
	jwt.RegisteredClaims

	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Tokens keeps the token and the signed-in user in storage. It is the token
// source of the API client.
type Tokens struct {
	mu    sync.RWMutex
	store port.Storage
	now   func() time.Time
}

func NewTokens(store port.Storage) *Tokens {
	return &Tokens{
		store: store,
		now:   time.Now,
	}
}

func (t *Tokens) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.store.Get(TokenKey)
	if !ok {
		return ""
	}
	return string(v)
}

func (t *Tokens) User() (domain.User, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.store.Get(UserKey)
	if !ok {
		return domain.User{}, false
	}

	var user domain.User
	if err := json.Unmarshal(v, &user); err != nil {
		return domain.User{}, false
	}

	return user, true
}

func (t *Tokens) Save(res domain.AuthResult) error {
	user, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.Set(TokenKey, []byte(res.Token))
	t.store.Set(UserKey, user)

	return nil
}

func (t *Tokens) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.Delete(TokenKey)
	t.store.Delete(UserKey)
}

// Claims decodes the stored token without verifying its signature; the
// server remains the authority on validity.
func (t *Tokens) Claims() (Claims, bool) {
	token := t.Token()
	if token == "" {
		return Claims{}, false
	}

	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, false
	}

	return claims, true
}

// Authenticated reports whether a token is stored and has not expired. A
// token that cannot be decoded counts as expired; one without an exp claim
// does not expire.
func (t *Tokens) Authenticated() bool {
	claims, ok := t.Claims()
	if !ok {
		return false
	}

	return !t.expiresWithin(claims, 0)
}

// ExpiresWithin reports whether the stored token is missing, unreadable, or
// expires in less than d.
func (t *Tokens) ExpiresWithin(d time.Duration) bool {
	claims, ok := t.Claims()
	if !ok {
		return true
	}

	return t.expiresWithin(claims, d)
}

func (t *Tokens) expiresWithin(claims Claims, d time.Duration) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(t.now().Add(d))
}

// UserFromToken builds a user from the token claims, for when no user record
// is stored.
func (t *Tokens) UserFromToken() (domain.User, bool) {
	claims, ok := t.Claims()
	if !ok {
		return domain.User{}, false
	}

	role := domain.RoleUser
	if claims.Role != "" {
		role = domain.UserRole(claims.Role)
	}

	status := domain.UserActive
	if claims.Active != nil && !*claims.Active {
		status = domain.UserInactive
	}

	return domain.User{
		ID:     claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   role,
		Status: status,
	}, true
}
