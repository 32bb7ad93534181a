package domain

import (
	"github.com/allisson/clubhouse/internal/errors"
)

// Identity registry errors.
var (
	// ErrIdentityNotFound indicates an identity with the specified ID was not found.
	ErrIdentityNotFound = errors.Wrap(errors.ErrNotFound, "identity not found")
)
