// Package domain defines directed follow relationships between identities.
//
// A relationship is created exactly once, under a token that was valid at the
// moment of creation. Later lapse of the token never removes the record,
// though re-verification can report the relationship as no longer backed by a
// valid token.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a relationship.
// Deletion is out of scope, so stored relationships stay active.
type Status string

// StatusActive indicates the relationship is in effect.
const StatusActive Status = "active"

// Relationship is a directed follow link from a source identity to a target
// identity, stamped with the token that authorized its creation.
type Relationship struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	SourceID  uuid.UUID // The follower
	TargetID  uuid.UUID // The followed identity
	TokenID   uuid.UUID // Token that authorized the creation
	CreatedAt time.Time
	Status    Status
}

// CreateFollowInput contains the parameters for creating a follow relationship.
type CreateFollowInput struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
	TokenID  uuid.UUID
}
