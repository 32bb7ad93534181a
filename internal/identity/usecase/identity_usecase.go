// Package usecase implements business logic orchestration for the identity registry.
package usecase

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/clock"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
)

// identityUseCase implements IdentityUseCase backed by an identity repository.
type identityUseCase struct {
	clock        clock.Clock
	identityRepo IdentityRepository
}

// Create registers a new identity.
//
// A UUIDv7 identifier is generated, duplicate permission flags are collapsed,
// and the record is stamped with the current clock reading. The stored record
// is immutable afterwards.
func (u *identityUseCase) Create(
	ctx context.Context,
	input *identityDomain.CreateIdentityInput,
) (*identityDomain.Identity, error) {
	identity := &identityDomain.Identity{
		ID:          uuid.Must(uuid.NewV7()),
		DisplayName: input.DisplayName,
		Permissions: dedupePermissions(input.Permissions),
		CreatedAt:   u.clock.Now(),
	}

	if err := u.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

// Get retrieves an identity by ID.
func (u *identityUseCase) Get(
	ctx context.Context,
	identityID uuid.UUID,
) (*identityDomain.Identity, error) {
	return u.identityRepo.Get(ctx, identityID)
}

// dedupePermissions removes duplicate permission flags while preserving order.
func dedupePermissions(permissions []identityDomain.Permission) []identityDomain.Permission {
	deduped := make([]identityDomain.Permission, 0, len(permissions))
	for _, permission := range permissions {
		if !slices.Contains(deduped, permission) {
			deduped = append(deduped, permission)
		}
	}
	return deduped
}

// NewIdentityUseCase creates a new IdentityUseCase with the provided dependencies.
func NewIdentityUseCase(clk clock.Clock, identityRepo IdentityRepository) IdentityUseCase {
	return &identityUseCase{
		clock:        clk,
		identityRepo: identityRepo,
	}
}
