// Package domain contains the reporting entities.
package domain

import (
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// Report is a point-in-time summary of the whole system: registered
// identities, token counts per status, and follow relationships.
type Report struct {
	Identities          int
	Tokens              tokenDomain.Stats
	TotalRelationships  int
	ActiveRelationships int
}
