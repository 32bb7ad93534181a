package dto

import (
	"time"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
)

// RelationshipResponse represents a follow relationship in API responses.
type RelationshipResponse struct {
	ID        string    `json:"id"`
	SourceID  string    `json:"source_id"`
	TargetID  string    `json:"target_id"`
	TokenID   string    `json:"token_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRelationshipResponse converts a domain relationship to its API representation.
func NewRelationshipResponse(relationship *relationshipDomain.Relationship) RelationshipResponse {
	return RelationshipResponse{
		ID:        relationship.ID.String(),
		SourceID:  relationship.SourceID.String(),
		TargetID:  relationship.TargetID.String(),
		TokenID:   relationship.TokenID.String(),
		Status:    string(relationship.Status),
		CreatedAt: relationship.CreatedAt,
	}
}

// RelationshipListResponse wraps a list of relationships.
type RelationshipListResponse struct {
	Relationships []RelationshipResponse `json:"relationships"`
}

// NewRelationshipListResponse converts domain relationships to their API representation.
func NewRelationshipListResponse(relationships []*relationshipDomain.Relationship) RelationshipListResponse {
	items := make([]RelationshipResponse, 0, len(relationships))
	for _, relationship := range relationships {
		items = append(items, NewRelationshipResponse(relationship))
	}
	return RelationshipListResponse{Relationships: items}
}

// IdentitySummary is the compact identity representation used by the
// following and followers listings.
type IdentitySummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// IdentityListResponse wraps a list of identity summaries.
type IdentityListResponse struct {
	Identities []IdentitySummary `json:"identities"`
}

// NewIdentityListResponse converts domain identities to their compact API representation.
func NewIdentityListResponse(identities []*identityDomain.Identity) IdentityListResponse {
	items := make([]IdentitySummary, 0, len(identities))
	for _, identity := range identities {
		items = append(items, IdentitySummary{
			ID:          identity.ID.String(),
			DisplayName: identity.DisplayName,
		})
	}
	return IdentityListResponse{Identities: items}
}

// VerifyBackingResponse reports whether the token behind a relationship is still valid.
type VerifyBackingResponse struct {
	RelationshipID string `json:"relationship_id"`
	Backed         bool   `json:"backed"`
}
