package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/metrics"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_issue", status)
	t.metrics.RecordDuration(ctx, "token", "token_issue", time.Since(start), status)

	return token, err
}

// Verify records metrics for token verification operations.
func (t *tokenUseCaseWithMetrics) Verify(
	ctx context.Context,
	tokenID uuid.UUID,
	requiredScope tokenDomain.Scope,
) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Verify(ctx, tokenID, requiredScope)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_verify", status)
	t.metrics.RecordDuration(ctx, "token", "token_verify", time.Since(start), status)

	return token, err
}

// Revoke records metrics for token revocation operations.
func (t *tokenUseCaseWithMetrics) Revoke(ctx context.Context, tokenID, requesterID uuid.UUID) error {
	start := time.Now()
	err := t.next.Revoke(ctx, tokenID, requesterID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_revoke", status)
	t.metrics.RecordDuration(ctx, "token", "token_revoke", time.Since(start), status)

	return err
}

// ExtendExpiry records metrics for token extension operations.
func (t *tokenUseCaseWithMetrics) ExtendExpiry(
	ctx context.Context,
	tokenID, requesterID uuid.UUID,
	extra time.Duration,
) error {
	start := time.Now()
	err := t.next.ExtendExpiry(ctx, tokenID, requesterID, extra)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_extend", status)
	t.metrics.RecordDuration(ctx, "token", "token_extend", time.Since(start), status)

	return err
}

// CleanupExpired records metrics for expired token cleanup operations.
func (t *tokenUseCaseWithMetrics) CleanupExpired(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := t.next.CleanupExpired(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_cleanup_expired", status)
	t.metrics.RecordDuration(ctx, "token", "token_cleanup_expired", time.Since(start), status)

	return count, err
}

// Stats records metrics for token summary operations.
func (t *tokenUseCaseWithMetrics) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	start := time.Now()
	stats, err := t.next.Stats(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_stats", status)
	t.metrics.RecordDuration(ctx, "token", "token_stats", time.Since(start), status)

	return stats, err
}
