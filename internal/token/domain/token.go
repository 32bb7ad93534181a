// Package domain defines authorization tokens and their lifecycle.
//
// A token is a time-scoped credential issued by a permitted identity and
// restricted to a single action scope. Status moves from active to expired
// (lazily, at verification time) or from active to revoked (explicitly);
// there are no reverse transitions.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scope is the action type a token is restricted to authorize.
type Scope string

// FollowAuthorizationScope authorizes the creation of follow relationships.
const FollowAuthorizationScope Scope = "follow-authorization"

// Status represents the lifecycle state of a token.
type Status string

const (
	// StatusActive indicates the token can still authorize its scope.
	StatusActive Status = "active"

	// StatusExpired indicates the token passed its expiration timestamp.
	// The flip from active is performed lazily at verification time; there is
	// no background sweep.
	StatusExpired Status = "expired"

	// StatusRevoked indicates the token was explicitly revoked.
	StatusRevoked Status = "revoked"
)

// Token is an authorization credential scoped to a single action type.
// All fields except Status, RevokedAt, and ExpiresAt (via extension) are
// immutable after issuance.
type Token struct {
	ID        uuid.UUID // Unique identifier (UUIDv7); doubles as the token value
	TokenHash string    // SHA-256 hash of the token value
	IssuerID  uuid.UUID // Identity that issued the token
	Scope     Scope     // Action type this token authorizes
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // Set when the token is revoked (nil otherwise)
	Status    Status
}

// IsExpired reports whether the token's expiration timestamp has passed.
// Expiration is always computed against a caller-provided clock reading,
// never polled by a scheduler.
func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IssueTokenInput contains the parameters for issuing a new token.
type IssueTokenInput struct {
	IssuerID uuid.UUID
	Scope    Scope
	// Lifetime is the duration until expiration. Zero means "use the
	// configured default"; negative values are rejected.
	Lifetime time.Duration
}

// Stats summarizes the token store for reporting. A token past its
// expiration but not yet lazily flipped counts as expired here; the report
// computes, it never mutates.
type Stats struct {
	Total   int
	Active  int
	Expired int
	Revoked int
}
