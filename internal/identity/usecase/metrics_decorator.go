package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	"github.com/allisson/clubhouse/internal/metrics"
)

// identityUseCaseWithMetrics decorates IdentityUseCase with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    IdentityUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps an IdentityUseCase with metrics recording.
func NewIdentityUseCaseWithMetrics(useCase IdentityUseCase, m metrics.BusinessMetrics) IdentityUseCase {
	return &identityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for identity registration operations.
func (i *identityUseCaseWithMetrics) Create(
	ctx context.Context,
	input *identityDomain.CreateIdentityInput,
) (*identityDomain.Identity, error) {
	start := time.Now()
	identity, err := i.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "identity", "identity_create", status)
	i.metrics.RecordDuration(ctx, "identity", "identity_create", time.Since(start), status)

	return identity, err
}

// Get records metrics for identity retrieval operations.
func (i *identityUseCaseWithMetrics) Get(
	ctx context.Context,
	identityID uuid.UUID,
) (*identityDomain.Identity, error) {
	start := time.Now()
	identity, err := i.next.Get(ctx, identityID)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "identity", "identity_get", status)
	i.metrics.RecordDuration(ctx, "identity", "identity_get", time.Since(start), status)

	return identity, err
}
