package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	"github.com/allisson/clubhouse/internal/metrics"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
)

// relationshipUseCaseWithMetrics decorates RelationshipUseCase with metrics instrumentation.
type relationshipUseCaseWithMetrics struct {
	next    RelationshipUseCase
	metrics metrics.BusinessMetrics
}

// NewRelationshipUseCaseWithMetrics wraps a RelationshipUseCase with metrics recording.
func NewRelationshipUseCaseWithMetrics(useCase RelationshipUseCase, m metrics.BusinessMetrics) RelationshipUseCase {
	return &relationshipUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateFollow records metrics for follow creation operations.
func (r *relationshipUseCaseWithMetrics) CreateFollow(
	ctx context.Context,
	input *relationshipDomain.CreateFollowInput,
) (*relationshipDomain.Relationship, error) {
	start := time.Now()
	relationship, err := r.next.CreateFollow(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relationship", "follow_create", status)
	r.metrics.RecordDuration(ctx, "relationship", "follow_create", time.Since(start), status)

	return relationship, err
}

// ListFollowing records metrics for following list operations.
func (r *relationshipUseCaseWithMetrics) ListFollowing(
	ctx context.Context,
	identityID uuid.UUID,
) ([]*identityDomain.Identity, error) {
	start := time.Now()
	identities, err := r.next.ListFollowing(ctx, identityID)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relationship", "follow_list_following", status)
	r.metrics.RecordDuration(ctx, "relationship", "follow_list_following", time.Since(start), status)

	return identities, err
}

// ListFollowers records metrics for followers list operations.
func (r *relationshipUseCaseWithMetrics) ListFollowers(
	ctx context.Context,
	identityID uuid.UUID,
) ([]*identityDomain.Identity, error) {
	start := time.Now()
	identities, err := r.next.ListFollowers(ctx, identityID)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relationship", "follow_list_followers", status)
	r.metrics.RecordDuration(ctx, "relationship", "follow_list_followers", time.Since(start), status)

	return identities, err
}

// ListAll records metrics for relationship list operations.
func (r *relationshipUseCaseWithMetrics) ListAll(
	ctx context.Context,
) ([]*relationshipDomain.Relationship, error) {
	start := time.Now()
	relationships, err := r.next.ListAll(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relationship", "follow_list_all", status)
	r.metrics.RecordDuration(ctx, "relationship", "follow_list_all", time.Since(start), status)

	return relationships, err
}

// VerifyBacking records metrics for relationship backing verification operations.
func (r *relationshipUseCaseWithMetrics) VerifyBacking(
	ctx context.Context,
	relationshipID uuid.UUID,
) (bool, error) {
	start := time.Now()
	backed, err := r.next.VerifyBacking(ctx, relationshipID)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relationship", "follow_verify_backing", status)
	r.metrics.RecordDuration(ctx, "relationship", "follow_verify_backing", time.Since(start), status)

	return backed, err
}
