// Package domain defines identity records and their permission flags.
//
// Identities are the actors of the system (admins and users). They are created
// once, owned by the registry for their full lifetime, and immutable afterwards.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Permission is a capability flag attached to an identity at creation time.
type Permission string

const (
	// AuthorizeRelationshipsPermission allows an identity to issue
	// relationship-authorization tokens.
	AuthorizeRelationshipsPermission Permission = "relationship:authorize"

	// RevokeAnyTokenPermission allows an identity to revoke or extend tokens
	// it did not issue.
	RevokeAnyTokenPermission Permission = "token:revoke-any"
)

// Identity represents a uniquely identified actor in the system.
type Identity struct {
	ID          uuid.UUID    // Unique identifier (UUIDv7)
	DisplayName string       // Human-readable name
	Permissions []Permission // Permission flags, fixed at creation
	CreatedAt   time.Time
}

// HasPermission reports whether the identity carries the given permission flag.
func (i *Identity) HasPermission(permission Permission) bool {
	return slices.Contains(i.Permissions, permission)
}

// CreateIdentityInput contains the parameters for registering a new identity.
type CreateIdentityInput struct {
	DisplayName string
	Permissions []Permission
}
