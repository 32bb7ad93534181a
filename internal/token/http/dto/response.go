package dto

import (
	"time"

	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// TokenResponse represents a token in API responses.
type TokenResponse struct {
	ID        string     `json:"id"`
	TokenHash string     `json:"token_hash"`
	IssuerID  string     `json:"issuer_id"`
	Scope     string     `json:"scope"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// NewTokenResponse converts a domain token to its API representation.
func NewTokenResponse(token *tokenDomain.Token) TokenResponse {
	return TokenResponse{
		ID:        token.ID.String(),
		TokenHash: token.TokenHash,
		IssuerID:  token.IssuerID.String(),
		Scope:     string(token.Scope),
		Status:    string(token.Status),
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
		RevokedAt: token.RevokedAt,
	}
}

// VerifyTokenResponse reports the outcome of a token verification.
type VerifyTokenResponse struct {
	Valid  bool           `json:"valid"`
	Reason string         `json:"reason,omitempty"`
	Token  *TokenResponse `json:"token,omitempty"`
}

// CleanupExpiredResponse reports how many tokens a cleanup pass flipped to expired.
type CleanupExpiredResponse struct {
	ExpiredCount int `json:"expired_count"`
}
