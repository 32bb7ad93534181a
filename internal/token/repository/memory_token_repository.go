// Package repository provides the in-memory token store.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// memoryTokenRepository implements usecase.TokenRepository backed by a map.
// A single read-write mutex guards the store, per the one-lock-per-store
// concurrency model.
type memoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]tokenDomain.Token
}

// NewMemoryTokenRepository creates an empty in-memory token repository.
func NewMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{
		tokens: make(map[uuid.UUID]tokenDomain.Token),
	}
}

// Create stores a new token.
func (r *memoryTokenRepository) Create(_ context.Context, token *tokenDomain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.ID] = *token
	return nil
}

// Get retrieves a token by ID. Returns ErrTokenNotFound if not found.
func (r *memoryTokenRepository) Get(
	_ context.Context,
	tokenID uuid.UUID,
) (*tokenDomain.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, exists := r.tokens[tokenID]
	if !exists {
		return nil, tokenDomain.ErrTokenNotFound
	}
	return &token, nil
}

// Update replaces an existing token. Returns ErrTokenNotFound if not found.
func (r *memoryTokenRepository) Update(_ context.Context, token *tokenDomain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token.ID]; !exists {
		return tokenDomain.ErrTokenNotFound
	}
	r.tokens[token.ID] = *token
	return nil
}

// ExpireOverdue flips every active token whose expiration has passed to
// expired and returns how many were flipped.
func (r *memoryTokenRepository) ExpireOverdue(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expired := 0
	for id, token := range r.tokens {
		if token.Status == tokenDomain.StatusActive && token.IsExpired(now) {
			token.Status = tokenDomain.StatusExpired
			r.tokens[id] = token
			expired++
		}
	}
	return expired, nil
}

// Stats summarizes the store against the given clock reading. Tokens past
// their expiration count as expired even when the lazy status flip has not
// happened yet; the store is not mutated.
func (r *memoryTokenRepository) Stats(_ context.Context, now time.Time) (*tokenDomain.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &tokenDomain.Stats{Total: len(r.tokens)}
	for _, token := range r.tokens {
		switch {
		case token.Status == tokenDomain.StatusRevoked:
			stats.Revoked++
		case token.Status == tokenDomain.StatusExpired || token.IsExpired(now):
			stats.Expired++
		default:
			stats.Active++
		}
	}
	return stats, nil
}
