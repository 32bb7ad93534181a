package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/clubhouse/internal/clock"
	"github.com/allisson/clubhouse/internal/config"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	identityRepository "github.com/allisson/clubhouse/internal/identity/repository"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
	relationshipRepository "github.com/allisson/clubhouse/internal/relationship/repository"
	relationshipUseCase "github.com/allisson/clubhouse/internal/relationship/usecase"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
	tokenRepository "github.com/allisson/clubhouse/internal/token/repository"
	tokenService "github.com/allisson/clubhouse/internal/token/service"
	tokenUseCase "github.com/allisson/clubhouse/internal/token/usecase"
)

func TestReportUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	manualClock := clock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	identityRepo := identityRepository.NewMemoryIdentityRepository()
	tokenRepo := tokenRepository.NewMemoryTokenRepository()
	relationshipRepo := relationshipRepository.NewMemoryRelationshipRepository()

	cfg := &config.Config{TokenDefaultLifetime: 2 * time.Hour}
	tokens := tokenUseCase.NewTokenUseCase(cfg, manualClock, identityRepo, tokenRepo, tokenService.NewTokenService())
	relationships := relationshipUseCase.NewRelationshipUseCase(manualClock, identityRepo, relationshipRepo, tokens)
	useCase := NewReportUseCase(identityRepo, relationshipRepo, tokens)

	t.Run("EmptySystem", func(t *testing.T) {
		report, err := useCase.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Identities)
		assert.Equal(t, 0, report.Tokens.Total)
		assert.Equal(t, 0, report.TotalRelationships)
	})

	admin := &identityDomain.Identity{
		ID:          uuid.Must(uuid.NewV7()),
		DisplayName: "admin",
		Permissions: []identityDomain.Permission{identityDomain.AuthorizeRelationshipsPermission},
		CreatedAt:   manualClock.Now(),
	}
	alice := &identityDomain.Identity{ID: uuid.Must(uuid.NewV7()), DisplayName: "alice", CreatedAt: manualClock.Now()}
	bob := &identityDomain.Identity{ID: uuid.Must(uuid.NewV7()), DisplayName: "bob", CreatedAt: manualClock.Now()}
	for _, identity := range []*identityDomain.Identity{admin, alice, bob} {
		require.NoError(t, identityRepo.Create(ctx, identity))
	}

	followToken, err := tokens.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: 2 * time.Hour,
	})
	require.NoError(t, err)

	revokedToken, err := tokens.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(ctx, revokedToken.ID, admin.ID))

	_, err = relationships.CreateFollow(ctx, &relationshipDomain.CreateFollowInput{
		SourceID: alice.ID,
		TargetID: bob.ID,
		TokenID:  followToken.ID,
	})
	require.NoError(t, err)

	t.Run("PopulatedSystem", func(t *testing.T) {
		report, err := useCase.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, report.Identities)
		assert.Equal(t, 2, report.Tokens.Total)
		assert.Equal(t, 1, report.Tokens.Active)
		assert.Equal(t, 1, report.Tokens.Revoked)
		assert.Equal(t, 1, report.TotalRelationships)
		assert.Equal(t, 1, report.ActiveRelationships)
	})

	t.Run("OverdueTokenCountsAsExpired", func(t *testing.T) {
		manualClock.Advance(3 * time.Hour)

		report, err := useCase.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, report.Tokens.Active)
		assert.Equal(t, 1, report.Tokens.Expired)
		assert.Equal(t, 1, report.Tokens.Revoked)
	})
}
