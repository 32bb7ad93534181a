// Package repository provides the in-memory relationship store.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
)

// pair is the (source, target) key used for duplicate detection.
type pair struct {
	source uuid.UUID
	target uuid.UUID
}

// memoryRelationshipRepository implements usecase.RelationshipRepository
// backed by maps. A single read-write mutex guards the store.
type memoryRelationshipRepository struct {
	mu            sync.RWMutex
	relationships map[uuid.UUID]relationshipDomain.Relationship
	activePairs   map[pair]uuid.UUID
}

// NewMemoryRelationshipRepository creates an empty in-memory relationship repository.
func NewMemoryRelationshipRepository() *memoryRelationshipRepository {
	return &memoryRelationshipRepository{
		relationships: make(map[uuid.UUID]relationshipDomain.Relationship),
		activePairs:   make(map[pair]uuid.UUID),
	}
}

// Create stores a new relationship. Returns ErrDuplicateRelationship when an
// active relationship with the same source and target already exists; the
// pair index makes the duplicate check atomic with the insert.
func (r *memoryRelationshipRepository) Create(
	_ context.Context,
	relationship *relationshipDomain.Relationship,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{source: relationship.SourceID, target: relationship.TargetID}
	if _, exists := r.activePairs[key]; exists {
		return relationshipDomain.ErrDuplicateRelationship
	}

	r.relationships[relationship.ID] = *relationship
	r.activePairs[key] = relationship.ID
	return nil
}

// Get retrieves a relationship by ID. Returns ErrRelationshipNotFound if not found.
func (r *memoryRelationshipRepository) Get(
	_ context.Context,
	relationshipID uuid.UUID,
) (*relationshipDomain.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	relationship, exists := r.relationships[relationshipID]
	if !exists {
		return nil, relationshipDomain.ErrRelationshipNotFound
	}
	return &relationship, nil
}

// ExistsActive reports whether an active relationship with the given source
// and target exists.
func (r *memoryRelationshipRepository) ExistsActive(
	_ context.Context,
	sourceID, targetID uuid.UUID,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.activePairs[pair{source: sourceID, target: targetID}]
	return exists, nil
}

// ListBySource returns the active relationships sourced from the given identity,
// ordered by creation time.
func (r *memoryRelationshipRepository) ListBySource(
	_ context.Context,
	sourceID uuid.UUID,
) ([]*relationshipDomain.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var relationships []*relationshipDomain.Relationship
	for _, relationship := range r.relationships {
		if relationship.SourceID == sourceID && relationship.Status == relationshipDomain.StatusActive {
			relationships = append(relationships, &relationship)
		}
	}
	sortByCreation(relationships)
	return relationships, nil
}

// ListByTarget returns the active relationships targeting the given identity,
// ordered by creation time.
func (r *memoryRelationshipRepository) ListByTarget(
	_ context.Context,
	targetID uuid.UUID,
) ([]*relationshipDomain.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var relationships []*relationshipDomain.Relationship
	for _, relationship := range r.relationships {
		if relationship.TargetID == targetID && relationship.Status == relationshipDomain.StatusActive {
			relationships = append(relationships, &relationship)
		}
	}
	sortByCreation(relationships)
	return relationships, nil
}

// ListAll returns every stored relationship, ordered by creation time.
func (r *memoryRelationshipRepository) ListAll(
	_ context.Context,
) ([]*relationshipDomain.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	relationships := make([]*relationshipDomain.Relationship, 0, len(r.relationships))
	for _, relationship := range r.relationships {
		relationships = append(relationships, &relationship)
	}
	sortByCreation(relationships)
	return relationships, nil
}

// Count returns total and active relationship counts.
func (r *memoryRelationshipRepository) Count(_ context.Context) (total int, active int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total = len(r.relationships)
	active = len(r.activePairs)
	return total, active, nil
}

// sortByCreation orders relationships by creation time, with the UUIDv7 id as
// a tiebreaker for records created in the same instant.
func sortByCreation(relationships []*relationshipDomain.Relationship) {
	sort.Slice(relationships, func(i, j int) bool {
		if relationships[i].CreatedAt.Equal(relationships[j].CreatedAt) {
			return relationships[i].ID.String() < relationships[j].ID.String()
		}
		return relationships[i].CreatedAt.Before(relationships[j].CreatedAt)
	})
}
