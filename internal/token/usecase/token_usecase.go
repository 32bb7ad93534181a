// Package usecase implements business logic orchestration for the token manager.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/clock"
	"github.com/allisson/clubhouse/internal/config"
	apperrors "github.com/allisson/clubhouse/internal/errors"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
	tokenService "github.com/allisson/clubhouse/internal/token/service"
)

// tokenUseCase implements TokenUseCase for managing authorization tokens.
type tokenUseCase struct {
	config       *config.Config
	clock        clock.Clock
	identityRepo identityUseCase.IdentityRepository
	tokenRepo    TokenRepository
	tokenService tokenService.TokenService
}

// Issue creates a new authorization token.
//
// This method:
// 1. Validates the issuer exists
// 2. Validates the issuer carries the relationship-authorization permission
// 3. Generates a UUIDv7 token id and its SHA-256 hash
// 4. Sets expiration = now + lifetime (configured default when unspecified)
// 5. Stores and returns the token
//
// No token is stored when any validation fails.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.Token, error) {
	// Get the issuing identity
	issuer, err := t.identityRepo.Get(ctx, input.IssuerID)
	if err != nil {
		return nil, err
	}

	// Only identities with the authorizing permission may issue tokens
	if !issuer.HasPermission(identityDomain.AuthorizeRelationshipsPermission) {
		return nil, apperrors.Wrap(tokenDomain.ErrPermissionDenied, "issuer cannot authorize relationships")
	}

	lifetime := input.Lifetime
	if lifetime == 0 {
		lifetime = t.config.TokenDefaultLifetime
	}
	if lifetime < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token lifetime must be positive")
	}

	now := t.clock.Now()
	tokenID := uuid.Must(uuid.NewV7())

	token := &tokenDomain.Token{
		ID:        tokenID,
		TokenHash: t.tokenService.HashToken(tokenID.String()),
		IssuerID:  issuer.ID,
		Scope:     input.Scope,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
		RevokedAt: nil,
		Status:    tokenDomain.StatusActive,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Verify checks token validity for the required scope.
//
// A token is valid only if it exists, its status is active, the current clock
// reading is before its expiration, and its scope matches requiredScope.
// When the expiration has passed, the status is lazily flipped to expired via
// the store before invalidity is reported; there is no background process
// watching expirations.
func (t *tokenUseCase) Verify(
	ctx context.Context,
	tokenID uuid.UUID,
	requiredScope tokenDomain.Scope,
) (*tokenDomain.Token, error) {
	token, err := t.tokenRepo.Get(ctx, tokenID)
	if err != nil {
		if apperrors.Is(err, tokenDomain.ErrTokenNotFound) {
			return nil, apperrors.Wrap(tokenDomain.ErrInvalidToken, "token does not exist")
		}
		return nil, err
	}

	switch token.Status {
	case tokenDomain.StatusRevoked:
		return nil, apperrors.Wrap(tokenDomain.ErrInvalidToken, "token is revoked")
	case tokenDomain.StatusExpired:
		return nil, apperrors.Wrap(tokenDomain.ErrInvalidToken, "token is expired")
	}

	// Lazy expiration: flip the status as a side effect of the check
	if token.IsExpired(t.clock.Now()) {
		token.Status = tokenDomain.StatusExpired
		if err := t.tokenRepo.Update(ctx, token); err != nil {
			return nil, err
		}
		return nil, apperrors.Wrap(tokenDomain.ErrInvalidToken, "token is expired")
	}

	if token.Scope != requiredScope {
		return nil, apperrors.Wrap(tokenDomain.ErrInvalidToken, "token scope does not match")
	}

	return token, nil
}

// Revoke sets the token status to revoked.
//
// The requester must be the issuer or hold the revoke-any override
// permission. Revoking an already revoked token is a no-op.
func (t *tokenUseCase) Revoke(ctx context.Context, tokenID, requesterID uuid.UUID) error {
	token, err := t.tokenRepo.Get(ctx, tokenID)
	if err != nil {
		return err
	}

	if err := t.checkTokenAuthority(ctx, token, requesterID); err != nil {
		return err
	}

	if token.Status == tokenDomain.StatusRevoked {
		return nil
	}

	now := t.clock.Now()
	token.Status = tokenDomain.StatusRevoked
	token.RevokedAt = &now

	return t.tokenRepo.Update(ctx, token)
}

// ExtendExpiry pushes the expiration of an active token forward by extra.
func (t *tokenUseCase) ExtendExpiry(
	ctx context.Context,
	tokenID, requesterID uuid.UUID,
	extra time.Duration,
) error {
	if extra <= 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "extension must be positive")
	}

	token, err := t.tokenRepo.Get(ctx, tokenID)
	if err != nil {
		return err
	}

	if err := t.checkTokenAuthority(ctx, token, requesterID); err != nil {
		return err
	}

	if token.Status != tokenDomain.StatusActive {
		return apperrors.Wrapf(tokenDomain.ErrInvalidToken, "token is %s", token.Status)
	}

	// An overdue token cannot be resurrected; flip it lazily instead
	if token.IsExpired(t.clock.Now()) {
		token.Status = tokenDomain.StatusExpired
		if err := t.tokenRepo.Update(ctx, token); err != nil {
			return err
		}
		return apperrors.Wrap(tokenDomain.ErrInvalidToken, "token is expired")
	}

	token.ExpiresAt = token.ExpiresAt.Add(extra)

	return t.tokenRepo.Update(ctx, token)
}

// CleanupExpired flips every active-but-overdue token to expired.
func (t *tokenUseCase) CleanupExpired(ctx context.Context) (int, error) {
	return t.tokenRepo.ExpireOverdue(ctx, t.clock.Now())
}

// Stats summarizes the token store for reporting.
func (t *tokenUseCase) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	return t.tokenRepo.Stats(ctx, t.clock.Now())
}

// checkTokenAuthority verifies the requester may manage the token: either it
// is the issuer or it holds the revoke-any override permission.
func (t *tokenUseCase) checkTokenAuthority(
	ctx context.Context,
	token *tokenDomain.Token,
	requesterID uuid.UUID,
) error {
	requester, err := t.identityRepo.Get(ctx, requesterID)
	if err != nil {
		return err
	}

	if requester.ID != token.IssuerID &&
		!requester.HasPermission(identityDomain.RevokeAnyTokenPermission) {
		return apperrors.Wrap(tokenDomain.ErrPermissionDenied, "requester is not the issuer")
	}

	return nil
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	cfg *config.Config,
	clk clock.Clock,
	identityRepo identityUseCase.IdentityRepository,
	tokenRepo TokenRepository,
	service tokenService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:       cfg,
		clock:        clk,
		identityRepo: identityRepo,
		tokenRepo:    tokenRepo,
		tokenService: service,
	}
}
