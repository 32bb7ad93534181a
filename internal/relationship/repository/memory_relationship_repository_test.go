package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
)

func newRelationship(sourceID, targetID uuid.UUID, createdAt time.Time) *relationshipDomain.Relationship {
	return &relationshipDomain.Relationship{
		ID:        uuid.Must(uuid.NewV7()),
		SourceID:  sourceID,
		TargetID:  targetID,
		TokenID:   uuid.Must(uuid.NewV7()),
		CreatedAt: createdAt,
		Status:    relationshipDomain.StatusActive,
	}
}

func TestMemoryRelationshipRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := NewMemoryRelationshipRepository()
		relationship := newRelationship(uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), now)

		err := repo.Create(ctx, relationship)
		require.NoError(t, err)

		found, err := repo.Get(ctx, relationship.ID)
		require.NoError(t, err)
		assert.Equal(t, relationship, found)
	})

	t.Run("Error_DuplicatePair", func(t *testing.T) {
		repo := NewMemoryRelationshipRepository()
		sourceID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		require.NoError(t, repo.Create(ctx, newRelationship(sourceID, targetID, now)))

		err := repo.Create(ctx, newRelationship(sourceID, targetID, now.Add(time.Minute)))
		assert.ErrorIs(t, err, relationshipDomain.ErrDuplicateRelationship)

		total, active, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, 1, active)
	})

	t.Run("ReverseDirectionIsDistinct", func(t *testing.T) {
		repo := NewMemoryRelationshipRepository()
		sourceID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		require.NoError(t, repo.Create(ctx, newRelationship(sourceID, targetID, now)))
		require.NoError(t, repo.Create(ctx, newRelationship(targetID, sourceID, now)))

		total, active, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, 2, active)
	})
}

func TestMemoryRelationshipRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := NewMemoryRelationshipRepository()

		found, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))
		assert.Nil(t, found)
		assert.ErrorIs(t, err, relationshipDomain.ErrRelationshipNotFound)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		repo := NewMemoryRelationshipRepository()
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		relationship := newRelationship(uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), now)
		require.NoError(t, repo.Create(ctx, relationship))

		first, err := repo.Get(ctx, relationship.ID)
		require.NoError(t, err)
		first.Status = relationshipDomain.Status("mangled")

		second, err := repo.Get(ctx, relationship.ID)
		require.NoError(t, err)
		assert.Equal(t, relationshipDomain.StatusActive, second.Status)
	})
}

func TestMemoryRelationshipRepository_ExistsActive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := NewMemoryRelationshipRepository()
	sourceID := uuid.Must(uuid.NewV7())
	targetID := uuid.Must(uuid.NewV7())

	exists, err := repo.ExistsActive(ctx, sourceID, targetID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, newRelationship(sourceID, targetID, now)))

	exists, err = repo.ExistsActive(ctx, sourceID, targetID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActive(ctx, targetID, sourceID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryRelationshipRepository_Listing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := NewMemoryRelationshipRepository()
	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())
	carol := uuid.Must(uuid.NewV7())

	first := newRelationship(alice, bob, now)
	second := newRelationship(alice, carol, now.Add(time.Minute))
	third := newRelationship(carol, bob, now.Add(2*time.Minute))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	t.Run("ListBySource", func(t *testing.T) {
		relationships, err := repo.ListBySource(ctx, alice)
		require.NoError(t, err)
		require.Len(t, relationships, 2)
		assert.Equal(t, first.ID, relationships[0].ID)
		assert.Equal(t, second.ID, relationships[1].ID)
	})

	t.Run("ListByTarget", func(t *testing.T) {
		relationships, err := repo.ListByTarget(ctx, bob)
		require.NoError(t, err)
		require.Len(t, relationships, 2)
		assert.Equal(t, first.ID, relationships[0].ID)
		assert.Equal(t, third.ID, relationships[1].ID)
	})

	t.Run("ListAll", func(t *testing.T) {
		relationships, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, relationships, 3)
		assert.Equal(t, first.ID, relationships[0].ID)
		assert.Equal(t, second.ID, relationships[1].ID)
		assert.Equal(t, third.ID, relationships[2].ID)
	})

	t.Run("ListBySource_Empty", func(t *testing.T) {
		relationships, err := repo.ListBySource(ctx, bob)
		require.NoError(t, err)
		assert.Empty(t, relationships)
	})
}
