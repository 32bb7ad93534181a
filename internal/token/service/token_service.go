// Package service provides token hashing for the token manager.
package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenService defines hashing operations for token values.
type TokenService interface {
	// HashToken hashes a plain text token value using SHA-256.
	HashToken(plainToken string) string
}

// tokenService implements TokenService using SHA-256 for token hashing.
type tokenService struct{}

// HashToken hashes a plain text token value using SHA-256.
// Returns the hash as a hexadecimal string.
func (t *tokenService) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

// NewTokenService creates a new TokenService instance using SHA-256 for token hashing.
func NewTokenService() TokenService {
	return &tokenService{}
}
