// Package repository provides the in-memory identity store.
//
// All state lives in process memory; each store is guarded by a single
// read-write mutex so the HTTP surface can serve concurrent callers.
package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
)

// memoryIdentityRepository implements usecase.IdentityRepository backed by a map.
type memoryIdentityRepository struct {
	mu         sync.RWMutex
	identities map[uuid.UUID]identityDomain.Identity
}

// NewMemoryIdentityRepository creates an empty in-memory identity repository.
func NewMemoryIdentityRepository() *memoryIdentityRepository {
	return &memoryIdentityRepository{
		identities: make(map[uuid.UUID]identityDomain.Identity),
	}
}

// Create stores a new identity. The record is copied in so later mutation of
// the caller's value cannot change the stored one.
func (r *memoryIdentityRepository) Create(_ context.Context, identity *identityDomain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.identities[identity.ID] = *identity
	return nil
}

// Get retrieves an identity by ID. Returns ErrIdentityNotFound if not found.
func (r *memoryIdentityRepository) Get(
	_ context.Context,
	identityID uuid.UUID,
) (*identityDomain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, exists := r.identities[identityID]
	if !exists {
		return nil, identityDomain.ErrIdentityNotFound
	}
	return &identity, nil
}

// Count returns the number of stored identities.
func (r *memoryIdentityRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.identities), nil
}
