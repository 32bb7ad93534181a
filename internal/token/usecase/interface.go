// Package usecase defines business logic interfaces for the token manager.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// TokenRepository defines storage operations for authorization tokens.
type TokenRepository interface {
	// Create stores a new token in the repository.
	Create(ctx context.Context, token *tokenDomain.Token) error

	// Get retrieves a token by ID. Returns ErrTokenNotFound if not found.
	Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error)

	// Update modifies an existing token. Returns ErrTokenNotFound if not found.
	Update(ctx context.Context, token *tokenDomain.Token) error

	// ExpireOverdue flips active tokens past their expiration to expired and
	// returns how many were flipped.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)

	// Stats summarizes the store against the given clock reading.
	Stats(ctx context.Context, now time.Time) (*tokenDomain.Stats, error)
}

// TokenUseCase defines business logic operations for the token manager.
type TokenUseCase interface {
	// Issue creates a new authorization token for the given issuer and scope.
	//
	// Returns ErrIdentityNotFound if the issuer does not exist and
	// ErrPermissionDenied if the issuer lacks the authorizing permission flag;
	// in both cases no token is stored.
	Issue(ctx context.Context, input *tokenDomain.IssueTokenInput) (*tokenDomain.Token, error)

	// Verify checks that the token exists, is active, unexpired, and scoped to
	// requiredScope, returning the token on success.
	//
	// Expiration is evaluated lazily here: a token past its expiration is
	// flipped to expired as a side effect before ErrInvalidToken is returned.
	// Every verification failure reports ErrInvalidToken.
	Verify(ctx context.Context, tokenID uuid.UUID, requiredScope tokenDomain.Scope) (*tokenDomain.Token, error)

	// Revoke sets the token status to revoked. Allowed for the issuer or any
	// identity holding the revoke-any override permission.
	Revoke(ctx context.Context, tokenID, requesterID uuid.UUID) error

	// ExtendExpiry pushes the expiration of an active token forward by extra.
	// Same permission rule as Revoke; an expired or revoked token cannot be
	// extended.
	ExtendExpiry(ctx context.Context, tokenID, requesterID uuid.UUID, extra time.Duration) error

	// CleanupExpired flips every active-but-overdue token to expired and
	// reports how many were flipped.
	CleanupExpired(ctx context.Context) (int, error)

	// Stats summarizes the token store for reporting.
	Stats(ctx context.Context) (*tokenDomain.Stats, error)
}
