// Package usecase defines business logic interfaces for the identity registry.
package usecase

import (
	"context"

	"github.com/google/uuid"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
)

// IdentityRepository defines storage operations for identity records.
type IdentityRepository interface {
	// Create stores a new identity in the repository.
	Create(ctx context.Context, identity *identityDomain.Identity) error

	// Get retrieves an identity by ID. Returns ErrIdentityNotFound if not found.
	Get(ctx context.Context, identityID uuid.UUID) (*identityDomain.Identity, error)

	// Count returns the number of stored identities.
	Count(ctx context.Context) (int, error)
}

// IdentityUseCase defines business logic operations for the identity registry.
// Identities are immutable after creation; there are no update or delete
// operations.
type IdentityUseCase interface {
	// Create registers a new identity with a generated unique ID and returns it.
	Create(ctx context.Context, input *identityDomain.CreateIdentityInput) (*identityDomain.Identity, error)

	// Get retrieves an identity by ID. Returns ErrIdentityNotFound if not found.
	Get(ctx context.Context, identityID uuid.UUID) (*identityDomain.Identity, error)
}
