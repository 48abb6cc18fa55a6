package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/rs/zerolog/log"
)

var ErrSessionExpired = errors.New("session expired, please log in again")

type Manager struct {
	tokens *Tokens
	auth   port.AuthAPI
}

func NewManager(tokens *Tokens, auth port.AuthAPI) *Manager {
	return &Manager{
		tokens: tokens,
		auth:   auth,
	}
}

// Login stores the returned token and user. Any failure clears previously
// stored auth data.
func (m *Manager) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	res, err := m.auth.Login(ctx, creds)
	if err != nil {
		m.tokens.Clear()
		return domain.User{}, fmt.Errorf("auth.Login: %w", err)
	}

	if err := m.tokens.Save(res); err != nil {
		m.tokens.Clear()
		return domain.User{}, fmt.Errorf("tokens.Save: %w", err)
	}

	log.Ctx(ctx).Info().Str("user_id", res.User.ID).Msg("signed in")

	return res.User, nil
}

func (m *Manager) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	res, err := m.auth.Register(ctx, reg)
	if err != nil {
		m.tokens.Clear()
		return domain.User{}, fmt.Errorf("auth.Register: %w", err)
	}

	if err := m.tokens.Save(res); err != nil {
		m.tokens.Clear()
		return domain.User{}, fmt.Errorf("tokens.Save: %w", err)
	}

	return res.User, nil
}

// Refresh exchanges the stored token for a new one. On failure the stored
// auth data is cleared and ErrSessionExpired is returned.
func (m *Manager) Refresh(ctx context.Context) error {
	token := m.tokens.Token()
	if token == "" {
		return fmt.Errorf("no refresh token available")
	}

	res, err := m.auth.RefreshToken(ctx, token)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("token refresh failed")
		m.tokens.Clear()
		return ErrSessionExpired
	}

	if err := m.tokens.Save(res); err != nil {
		m.tokens.Clear()
		return fmt.Errorf("tokens.Save: %w", err)
	}

	return nil
}

// EnsureFresh refreshes the token when it expires within window.
func (m *Manager) EnsureFresh(ctx context.Context, window time.Duration) error {
	if m.tokens.Token() == "" || !m.tokens.ExpiresWithin(window) {
		return nil
	}

	return m.Refresh(ctx)
}

func (m *Manager) Logout() {
	m.tokens.Clear()
}

func (m *Manager) Tokens() *Tokens {
	return m.tokens
}
