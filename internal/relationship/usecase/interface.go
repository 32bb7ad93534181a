// Package usecase defines business logic interfaces for the relationship manager.
package usecase

import (
	"context"

	"github.com/google/uuid"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
)

// RelationshipRepository defines storage operations for follow relationships.
type RelationshipRepository interface {
	// Create stores a new relationship. Returns ErrDuplicateRelationship when
	// an active relationship with the same source and target already exists.
	Create(ctx context.Context, relationship *relationshipDomain.Relationship) error

	// Get retrieves a relationship by ID. Returns ErrRelationshipNotFound if not found.
	Get(ctx context.Context, relationshipID uuid.UUID) (*relationshipDomain.Relationship, error)

	// ExistsActive reports whether an active relationship with the given
	// source and target exists.
	ExistsActive(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error)

	// ListBySource returns the active relationships sourced from the identity.
	ListBySource(ctx context.Context, sourceID uuid.UUID) ([]*relationshipDomain.Relationship, error)

	// ListByTarget returns the active relationships targeting the identity.
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*relationshipDomain.Relationship, error)

	// ListAll returns every stored relationship.
	ListAll(ctx context.Context) ([]*relationshipDomain.Relationship, error)

	// Count returns total and active relationship counts.
	Count(ctx context.Context) (total int, active int, err error)
}

// RelationshipUseCase defines business logic operations for follow relationships.
type RelationshipUseCase interface {
	// CreateFollow creates a directed follow relationship from source to
	// target, gated on the validity of the presented token for the
	// follow-authorization scope.
	//
	// Returns ErrSelfFollow when source equals target, ErrIdentityNotFound
	// when either endpoint is unknown, ErrInvalidToken when token verification
	// fails for any reason, and ErrDuplicateRelationship when an active
	// relationship for the pair exists. No relationship is stored on failure.
	CreateFollow(
		ctx context.Context,
		input *relationshipDomain.CreateFollowInput,
	) (*relationshipDomain.Relationship, error)

	// ListFollowing returns the identities the given identity follows.
	ListFollowing(ctx context.Context, identityID uuid.UUID) ([]*identityDomain.Identity, error)

	// ListFollowers returns the identities following the given identity.
	ListFollowers(ctx context.Context, identityID uuid.UUID) ([]*identityDomain.Identity, error)

	// ListAll returns every stored relationship for reporting.
	ListAll(ctx context.Context) ([]*relationshipDomain.Relationship, error)

	// VerifyBacking re-verifies the token behind an existing relationship and
	// reports whether it still backs the record. The relationship itself is
	// never invalidated by a lapsed token.
	VerifyBacking(ctx context.Context, relationshipID uuid.UUID) (bool, error)
}
