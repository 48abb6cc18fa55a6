package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()

	return signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gofakeit.UUID(),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
}

func newTokens() *Tokens {
	tokens := NewTokens(storage.NewMemory())
	tokens.now = func() time.Time { return now }
	return tokens
}

type fakeAuth struct {
	result domain.AuthResult
	err    error
	calls  int
}

func (f *fakeAuth) Login(context.Context, domain.Credentials) (domain.AuthResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeAuth) Register(context.Context, domain.Registration) (domain.AuthResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeAuth) RefreshToken(context.Context, string) (domain.AuthResult, error) {
	f.calls++
	return f.result, f.err
}

func TestTokens_Authenticated(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name: "no token",
			want: false,
		},
		{
			name:  "valid token",
			token: tokenExpiringAt(t, now.Add(time.Hour)),
			want:  true,
		},
		{
			name:  "expired token",
			token: tokenExpiringAt(t, now.Add(-time.Second)),
			want:  false,
		},
		{
			name:  "token without exp",
			token: signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}),
			want:  true,
		},
		{
			name:  "garbage token",
			token: "not.a.jwt",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newTokens()
			if tt.token != "" {
				require.NoError(t, tokens.Save(domain.AuthResult{Token: tt.token}))
			}

			assert.Equal(t, tt.want, tokens.Authenticated())
		})
	}
}

func TestTokens_SaveAndClear(t *testing.T) {
	tokens := newTokens()

	_, ok := tokens.User()
	assert.False(t, ok)

	user := domain.User{ID: "u1", Email: "ann@example.com", Name: "Ann", Role: domain.RoleAdmin}
	require.NoError(t, tokens.Save(domain.AuthResult{Token: "t1", User: user}))

	assert.Equal(t, "t1", tokens.Token())
	got, ok := tokens.User()
	require.True(t, ok)
	assert.Equal(t, user, got)

	tokens.Clear()

	assert.Empty(t, tokens.Token())
	_, ok = tokens.User()
	assert.False(t, ok)
}

func TestTokens_UserFromToken(t *testing.T) {
	tokens := newTokens()

	inactive := false
	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		Email:            "ada@shop.test",
		Name:             "Ada",
		Role:             "admin",
		Active:           &inactive,
	})
	require.NoError(t, tokens.Save(domain.AuthResult{Token: token}))

	user, ok := tokens.UserFromToken()
	require.True(t, ok)
	assert.Equal(t, domain.User{
		ID:     "u1",
		Email:  "ada@shop.test",
		Name:   "Ada",
		Role:   domain.RoleAdmin,
		Status: domain.UserInactive,
	}, user)

	tokens.Clear()
	_, ok = tokens.UserFromToken()
	assert.False(t, ok)
}

func TestManager_Login(t *testing.T) {
	ctx := t.Context()

	t.Run("success stores token and user", func(t *testing.T) {
		tokens := newTokens()
		token := tokenExpiringAt(t, now.Add(time.Hour))
		auth := &fakeAuth{result: domain.AuthResult{Token: token, User: domain.User{ID: "u1", Name: "Ada"}}}

		user, err := NewManager(tokens, auth).Login(ctx, domain.Credentials{Email: "a@b.c", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		assert.Equal(t, token, tokens.Token())
		stored, ok := tokens.User()
		require.True(t, ok)
		assert.Equal(t, "Ada", stored.Name)
	})

	t.Run("failure clears previous auth data", func(t *testing.T) {
		tokens := newTokens()
		require.NoError(t, tokens.Save(domain.AuthResult{Token: "old", User: domain.User{ID: "u0"}}))

		auth := &fakeAuth{err: errors.New("invalid email or password")}

		_, err := NewManager(tokens, auth).Login(ctx, domain.Credentials{})
		require.EqualError(t, err, "auth.Login: invalid email or password")

		assert.Empty(t, tokens.Token())
		_, ok := tokens.User()
		assert.False(t, ok)
	})
}

func TestManager_Refresh(t *testing.T) {
	ctx := t.Context()

	t.Run("no token", func(t *testing.T) {
		auth := &fakeAuth{}
		err := NewManager(newTokens(), auth).Refresh(ctx)
		require.EqualError(t, err, "no refresh token available")
		assert.Zero(t, auth.calls)
	})

	t.Run("replaces token", func(t *testing.T) {
		tokens := newTokens()
		require.NoError(t, tokens.Save(domain.AuthResult{Token: "old"}))

		auth := &fakeAuth{result: domain.AuthResult{Token: "new", User: domain.User{ID: "u1"}}}
		require.NoError(t, NewManager(tokens, auth).Refresh(ctx))
		assert.Equal(t, "new", tokens.Token())
	})

	t.Run("failure expires the session", func(t *testing.T) {
		tokens := newTokens()
		require.NoError(t, tokens.Save(domain.AuthResult{Token: "old"}))

		auth := &fakeAuth{err: errors.New("401")}
		err := NewManager(tokens, auth).Refresh(ctx)
		require.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, tokens.Token())
	})
}

func TestManager_EnsureFresh(t *testing.T) {
	ctx := t.Context()

	tests := []struct {
		name      string
		token     string
		wantCalls int
	}{
		{
			name:      "signed out: nothing to refresh",
			wantCalls: 0,
		},
		{
			name:      "far from expiry",
			token:     tokenExpiringAt(t, now.Add(time.Hour)),
			wantCalls: 0,
		},
		{
			name:      "inside refresh window",
			token:     tokenExpiringAt(t, now.Add(time.Minute)),
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newTokens()
			if tt.token != "" {
				require.NoError(t, tokens.Save(domain.AuthResult{Token: tt.token}))
			}

			auth := &fakeAuth{result: domain.AuthResult{Token: tokenExpiringAt(t, now.Add(time.Hour))}}
			require.NoError(t, NewManager(tokens, auth).EnsureFresh(ctx, 5*time.Minute))
			assert.Equal(t, tt.wantCalls, auth.calls)
		})
	}
}
