package domain

import (
	"github.com/allisson/clubhouse/internal/errors"
)

// Token manager errors.
var (
	// ErrTokenNotFound indicates a token with the specified ID was not found.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrPermissionDenied indicates the acting identity lacks the required
	// permission flag for the operation.
	ErrPermissionDenied = errors.Wrap(errors.ErrForbidden, "permission denied")

	// ErrInvalidToken indicates the token is missing, expired, revoked, or
	// scoped to a different action than required.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")
)
