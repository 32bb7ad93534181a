// Package usecase implements business logic orchestration for follow relationships.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/clock"
	apperrors "github.com/allisson/clubhouse/internal/errors"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
	tokenUseCase "github.com/allisson/clubhouse/internal/token/usecase"
)

// relationshipUseCase implements RelationshipUseCase.
type relationshipUseCase struct {
	clock            clock.Clock
	identityRepo     identityUseCase.IdentityRepository
	relationshipRepo RelationshipRepository
	tokenUseCase     tokenUseCase.TokenUseCase
}

// CreateFollow creates a token-gated follow relationship.
//
// This method:
// 1. Rejects self-follows before touching the token
// 2. Validates both endpoints exist
// 3. Verifies the token for the follow-authorization scope
// 4. Rejects duplicates for the (source, target) pair
// 5. Stores the relationship stamped with the current time and the token
//
// The relationship is only stored when every check passes; the token was
// therefore valid at the moment of creation.
func (u *relationshipUseCase) CreateFollow(
	ctx context.Context,
	input *relationshipDomain.CreateFollowInput,
) (*relationshipDomain.Relationship, error) {
	if input.SourceID == input.TargetID {
		return nil, relationshipDomain.ErrSelfFollow
	}

	if _, err := u.identityRepo.Get(ctx, input.SourceID); err != nil {
		return nil, apperrors.Wrap(err, "source")
	}
	if _, err := u.identityRepo.Get(ctx, input.TargetID); err != nil {
		return nil, apperrors.Wrap(err, "target")
	}

	// The token gate: any verification failure aborts the creation
	if _, err := u.tokenUseCase.Verify(ctx, input.TokenID, tokenDomain.FollowAuthorizationScope); err != nil {
		return nil, err
	}

	exists, err := u.relationshipRepo.ExistsActive(ctx, input.SourceID, input.TargetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, relationshipDomain.ErrDuplicateRelationship
	}

	relationship := &relationshipDomain.Relationship{
		ID:        uuid.Must(uuid.NewV7()),
		SourceID:  input.SourceID,
		TargetID:  input.TargetID,
		TokenID:   input.TokenID,
		CreatedAt: u.clock.Now(),
		Status:    relationshipDomain.StatusActive,
	}

	if err := u.relationshipRepo.Create(ctx, relationship); err != nil {
		return nil, err
	}

	return relationship, nil
}

// ListFollowing returns the identities the given identity follows.
func (u *relationshipUseCase) ListFollowing(
	ctx context.Context,
	identityID uuid.UUID,
) ([]*identityDomain.Identity, error) {
	if _, err := u.identityRepo.Get(ctx, identityID); err != nil {
		return nil, err
	}

	relationships, err := u.relationshipRepo.ListBySource(ctx, identityID)
	if err != nil {
		return nil, err
	}

	return u.resolveIdentities(ctx, relationships, func(r *relationshipDomain.Relationship) uuid.UUID {
		return r.TargetID
	})
}

// ListFollowers returns the identities following the given identity.
func (u *relationshipUseCase) ListFollowers(
	ctx context.Context,
	identityID uuid.UUID,
) ([]*identityDomain.Identity, error) {
	if _, err := u.identityRepo.Get(ctx, identityID); err != nil {
		return nil, err
	}

	relationships, err := u.relationshipRepo.ListByTarget(ctx, identityID)
	if err != nil {
		return nil, err
	}

	return u.resolveIdentities(ctx, relationships, func(r *relationshipDomain.Relationship) uuid.UUID {
		return r.SourceID
	})
}

// ListAll returns every stored relationship for reporting.
func (u *relationshipUseCase) ListAll(ctx context.Context) ([]*relationshipDomain.Relationship, error) {
	return u.relationshipRepo.ListAll(ctx)
}

// VerifyBacking re-verifies the token behind an existing relationship.
func (u *relationshipUseCase) VerifyBacking(
	ctx context.Context,
	relationshipID uuid.UUID,
) (bool, error) {
	relationship, err := u.relationshipRepo.Get(ctx, relationshipID)
	if err != nil {
		return false, err
	}

	if _, err := u.tokenUseCase.Verify(ctx, relationship.TokenID, tokenDomain.FollowAuthorizationScope); err != nil {
		if apperrors.Is(err, tokenDomain.ErrInvalidToken) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// resolveIdentities maps relationship endpoints to identity records.
func (u *relationshipUseCase) resolveIdentities(
	ctx context.Context,
	relationships []*relationshipDomain.Relationship,
	endpoint func(*relationshipDomain.Relationship) uuid.UUID,
) ([]*identityDomain.Identity, error) {
	identities := make([]*identityDomain.Identity, 0, len(relationships))
	for _, relationship := range relationships {
		identity, err := u.identityRepo.Get(ctx, endpoint(relationship))
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, nil
}

// NewRelationshipUseCase creates a new RelationshipUseCase with the provided dependencies.
func NewRelationshipUseCase(
	clk clock.Clock,
	identityRepo identityUseCase.IdentityRepository,
	relationshipRepo RelationshipRepository,
	tokens tokenUseCase.TokenUseCase,
) RelationshipUseCase {
	return &relationshipUseCase{
		clock:            clk,
		identityRepo:     identityRepo,
		relationshipRepo: relationshipRepo,
		tokenUseCase:     tokens,
	}
}
