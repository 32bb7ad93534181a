package domain

import (
	"github.com/allisson/clubhouse/internal/errors"
)

// Relationship manager errors.
var (
	// ErrRelationshipNotFound indicates a relationship with the specified ID was not found.
	ErrRelationshipNotFound = errors.Wrap(errors.ErrNotFound, "relationship not found")

	// ErrSelfFollow indicates an identity tried to follow itself.
	ErrSelfFollow = errors.Wrap(errors.ErrInvalidInput, "an identity cannot follow itself")

	// ErrDuplicateRelationship indicates an active relationship with the same
	// source and target already exists.
	ErrDuplicateRelationship = errors.Wrap(errors.ErrConflict, "relationship already exists")
)
