package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

func newTestToken(status tokenDomain.Status, expiresAt time.Time) *tokenDomain.Token {
	return &tokenDomain.Token{
		ID:        uuid.Must(uuid.NewV7()),
		IssuerID:  uuid.Must(uuid.NewV7()),
		Scope:     tokenDomain.FollowAuthorizationScope,
		CreatedAt: expiresAt.Add(-2 * time.Hour),
		ExpiresAt: expiresAt,
		Status:    status,
	}
}

func TestMemoryTokenRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create and get token", func(t *testing.T) {
		repo := NewMemoryTokenRepository()
		token := newTestToken(tokenDomain.StatusActive, now.Add(2*time.Hour))

		require.NoError(t, repo.Create(ctx, token))

		got, err := repo.Get(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
		assert.Equal(t, tokenDomain.StatusActive, got.Status)
	})

	t.Run("get unknown token returns not found", func(t *testing.T) {
		repo := NewMemoryTokenRepository()

		_, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
	})

	t.Run("update replaces stored token", func(t *testing.T) {
		repo := NewMemoryTokenRepository()
		token := newTestToken(tokenDomain.StatusActive, now.Add(2*time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		token.Status = tokenDomain.StatusRevoked
		revokedAt := now
		token.RevokedAt = &revokedAt
		require.NoError(t, repo.Update(ctx, token))

		got, err := repo.Get(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusRevoked, got.Status)
		assert.NotNil(t, got.RevokedAt)
	})

	t.Run("update unknown token returns not found", func(t *testing.T) {
		repo := NewMemoryTokenRepository()
		token := newTestToken(tokenDomain.StatusActive, now.Add(2*time.Hour))

		assert.ErrorIs(t, repo.Update(ctx, token), tokenDomain.ErrTokenNotFound)
	})

	t.Run("expire overdue flips only overdue active tokens", func(t *testing.T) {
		repo := NewMemoryTokenRepository()

		overdue := newTestToken(tokenDomain.StatusActive, now.Add(-time.Minute))
		current := newTestToken(tokenDomain.StatusActive, now.Add(time.Hour))
		revoked := newTestToken(tokenDomain.StatusRevoked, now.Add(-time.Minute))

		require.NoError(t, repo.Create(ctx, overdue))
		require.NoError(t, repo.Create(ctx, current))
		require.NoError(t, repo.Create(ctx, revoked))

		count, err := repo.ExpireOverdue(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := repo.Get(ctx, overdue.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusExpired, got.Status)

		got, err = repo.Get(ctx, current.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusActive, got.Status)

		got, err = repo.Get(ctx, revoked.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusRevoked, got.Status)
	})

	t.Run("stats counts overdue tokens as expired without mutating", func(t *testing.T) {
		repo := NewMemoryTokenRepository()

		active := newTestToken(tokenDomain.StatusActive, now.Add(time.Hour))
		overdue := newTestToken(tokenDomain.StatusActive, now.Add(-time.Minute))
		flipped := newTestToken(tokenDomain.StatusExpired, now.Add(-time.Hour))
		revoked := newTestToken(tokenDomain.StatusRevoked, now.Add(time.Hour))

		for _, token := range []*tokenDomain.Token{active, overdue, flipped, revoked} {
			require.NoError(t, repo.Create(ctx, token))
		}

		stats, err := repo.Stats(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Active)
		assert.Equal(t, 2, stats.Expired)
		assert.Equal(t, 1, stats.Revoked)

		// The overdue token keeps its stored status
		got, err := repo.Get(ctx, overdue.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusActive, got.Status)
	})
}
