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
	apperrors "github.com/allisson/clubhouse/internal/errors"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	identityRepository "github.com/allisson/clubhouse/internal/identity/repository"
	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
	tokenRepository "github.com/allisson/clubhouse/internal/token/repository"
	tokenService "github.com/allisson/clubhouse/internal/token/service"
)

// fixture wires a token use case against real in-memory stores and a manual
// clock, which keeps the lazy-expiration behavior observable end to end.
type fixture struct {
	clock        *clock.ManualClock
	identityRepo identityUseCase.IdentityRepository
	tokenRepo    TokenRepository
	useCase      TokenUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	manualClock := clock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	identityRepo := identityRepository.NewMemoryIdentityRepository()
	tokenRepo := tokenRepository.NewMemoryTokenRepository()

	cfg := &config.Config{TokenDefaultLifetime: 2 * time.Hour}

	return &fixture{
		clock:        manualClock,
		identityRepo: identityRepo,
		tokenRepo:    tokenRepo,
		useCase: NewTokenUseCase(
			cfg,
			manualClock,
			identityRepo,
			tokenRepo,
			tokenService.NewTokenService(),
		),
	}
}

func (f *fixture) createIdentity(
	t *testing.T,
	name string,
	permissions ...identityDomain.Permission,
) *identityDomain.Identity {
	t.Helper()

	identity := &identityDomain.Identity{
		ID:          uuid.Must(uuid.NewV7()),
		DisplayName: name,
		Permissions: permissions,
		CreatedAt:   f.clock.Now(),
	}
	require.NoError(t, f.identityRepo.Create(context.Background(), identity))
	return identity
}

func TestTokenUseCase_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssueToken", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)

		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, token.ID)
		assert.Equal(t, admin.ID, token.IssuerID)
		assert.Equal(t, tokenDomain.StatusActive, token.Status)
		assert.Equal(t, f.clock.Now(), token.CreatedAt)
		assert.Equal(t, f.clock.Now().Add(2*time.Hour), token.ExpiresAt)
		assert.NotEmpty(t, token.TokenHash)
	})

	t.Run("Success_ZeroLifetimeUsesDefault", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)

		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
		})

		require.NoError(t, err)
		assert.Equal(t, f.clock.Now().Add(2*time.Hour), token.ExpiresAt)
	})

	t.Run("Error_IssuerWithoutPermission", func(t *testing.T) {
		f := newFixture(t)
		user := f.createIdentity(t, "alice")

		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: user.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})

		assert.Nil(t, token)
		assert.ErrorIs(t, err, tokenDomain.ErrPermissionDenied)

		// No token was stored
		stats, statsErr := f.useCase.Stats(ctx)
		require.NoError(t, statsErr)
		assert.Equal(t, 0, stats.Total)
	})

	t.Run("Error_IssuerNotFound", func(t *testing.T) {
		f := newFixture(t)

		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: uuid.Must(uuid.NewV7()),
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})

		assert.Nil(t, token)
		assert.ErrorIs(t, err, identityDomain.ErrIdentityNotFound)
	})

	t.Run("Error_NegativeLifetime", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)

		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: -time.Hour,
		})

		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenUseCase_Verify(t *testing.T) {
	ctx := context.Background()

	issue := func(t *testing.T, f *fixture, lifetime time.Duration) *tokenDomain.Token {
		t.Helper()
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: lifetime,
		})
		require.NoError(t, err)
		return token
	}

	t.Run("Success_ValidBeforeExpiration", func(t *testing.T) {
		f := newFixture(t)
		token := issue(t, f, 2*time.Hour)

		f.clock.Advance(2*time.Hour - time.Second)

		verified, err := f.useCase.Verify(ctx, token.ID, tokenDomain.FollowAuthorizationScope)
		require.NoError(t, err)
		assert.Equal(t, token.ID, verified.ID)
	})

	t.Run("Error_ExpiredAfterLifetime", func(t *testing.T) {
		f := newFixture(t)
		token := issue(t, f, 2*time.Hour)

		f.clock.Advance(2*time.Hour + time.Second)

		verified, err := f.useCase.Verify(ctx, token.ID, tokenDomain.FollowAuthorizationScope)
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidToken)

		// The check lazily flipped the stored status to expired
		stored, getErr := f.tokenRepo.Get(ctx, token.ID)
		require.NoError(t, getErr)
		assert.Equal(t, tokenDomain.StatusExpired, stored.Status)
	})

	t.Run("Error_WrongScope", func(t *testing.T) {
		f := newFixture(t)
		token := issue(t, f, 2*time.Hour)

		verified, err := f.useCase.Verify(ctx, token.ID, tokenDomain.Scope("quest-authorization"))
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidToken)
	})

	t.Run("Error_UnknownToken", func(t *testing.T) {
		f := newFixture(t)

		verified, err := f.useCase.Verify(ctx, uuid.Must(uuid.NewV7()), tokenDomain.FollowAuthorizationScope)
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidToken)
	})

	t.Run("Error_RevokedToken", func(t *testing.T) {
		f := newFixture(t)
		token := issue(t, f, 2*time.Hour)

		require.NoError(t, f.useCase.Revoke(ctx, token.ID, token.IssuerID))

		verified, err := f.useCase.Verify(ctx, token.ID, tokenDomain.FollowAuthorizationScope)
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidToken)
	})
}

func TestTokenUseCase_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssuerRevokes", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})
		require.NoError(t, err)

		require.NoError(t, f.useCase.Revoke(ctx, token.ID, admin.ID))

		stored, err := f.tokenRepo.Get(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.StatusRevoked, stored.Status)
		require.NotNil(t, stored.RevokedAt)
		assert.Equal(t, f.clock.Now(), *stored.RevokedAt)
	})

	t.Run("Success_OverridePermissionRevokes", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		moderator := f.createIdentity(t, "moderator", identityDomain.RevokeAnyTokenPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})
		require.NoError(t, err)

		assert.NoError(t, f.useCase.Revoke(ctx, token.ID, moderator.ID))
	})

	t.Run("Error_RequesterNotIssuer", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		user := f.createIdentity(t, "alice")
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: 2 * time.Hour,
		})
		require.NoError(t, err)

		err = f.useCase.Revoke(ctx, token.ID, user.ID)
		assert.ErrorIs(t, err, tokenDomain.ErrPermissionDenied)

		stored, getErr := f.tokenRepo.Get(ctx, token.ID)
		require.NoError(t, getErr)
		assert.Equal(t, tokenDomain.StatusActive, stored.Status)
	})

	t.Run("Error_TokenNotFound", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)

		err := f.useCase.Revoke(ctx, uuid.Must(uuid.NewV7()), admin.ID)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
	})
}

func TestTokenUseCase_ExtendExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ExtendActiveToken", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: time.Hour,
		})
		require.NoError(t, err)

		require.NoError(t, f.useCase.ExtendExpiry(ctx, token.ID, admin.ID, time.Hour))

		stored, err := f.tokenRepo.Get(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, token.ExpiresAt.Add(time.Hour), stored.ExpiresAt)
	})

	t.Run("Error_ExpiredTokenCannotBeExtended", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: time.Hour,
		})
		require.NoError(t, err)

		f.clock.Advance(2 * time.Hour)

		err = f.useCase.ExtendExpiry(ctx, token.ID, admin.ID, time.Hour)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidToken)

		stored, getErr := f.tokenRepo.Get(ctx, token.ID)
		require.NoError(t, getErr)
		assert.Equal(t, tokenDomain.StatusExpired, stored.Status)
	})

	t.Run("Error_NonPositiveExtension", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)
		token, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
			IssuerID: admin.ID,
			Scope:    tokenDomain.FollowAuthorizationScope,
			Lifetime: time.Hour,
		})
		require.NoError(t, err)

		err = f.useCase.ExtendExpiry(ctx, token.ID, admin.ID, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenUseCase_CleanupExpired(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	admin := f.createIdentity(t, "admin", identityDomain.AuthorizeRelationshipsPermission)

	short, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: time.Hour,
	})
	require.NoError(t, err)

	long, err := f.useCase.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: 4 * time.Hour,
	})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	count, err := f.useCase.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := f.tokenRepo.Get(ctx, short.ID)
	require.NoError(t, err)
	assert.Equal(t, tokenDomain.StatusExpired, stored.Status)

	stored, err = f.tokenRepo.Get(ctx, long.ID)
	require.NoError(t, err)
	assert.Equal(t, tokenDomain.StatusActive, stored.Status)
}
