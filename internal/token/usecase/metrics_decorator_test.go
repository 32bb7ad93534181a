package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockTokenUseCase is a local mock for TokenUseCase.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.Token, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

func (m *mockTokenUseCase) Verify(
	ctx context.Context,
	tokenID uuid.UUID,
	requiredScope tokenDomain.Scope,
) (*tokenDomain.Token, error) {
	args := m.Called(ctx, tokenID, requiredScope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

func (m *mockTokenUseCase) Revoke(ctx context.Context, tokenID, requesterID uuid.UUID) error {
	args := m.Called(ctx, tokenID, requesterID)
	return args.Error(0)
}

func (m *mockTokenUseCase) ExtendExpiry(
	ctx context.Context,
	tokenID, requesterID uuid.UUID,
	extra time.Duration,
) error {
	args := m.Called(ctx, tokenID, requesterID, extra)
	return args.Error(0)
}

func (m *mockTokenUseCase) CleanupExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockTokenUseCase) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Stats), args.Error(1)
}

func TestTokenUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Issue success", func(t *testing.T) {
		mockNext := &mockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		input := &tokenDomain.IssueTokenInput{IssuerID: uuid.Must(uuid.NewV7())}
		token := &tokenDomain.Token{ID: uuid.Must(uuid.NewV7())}

		mockNext.On("Issue", ctx, input).Return(token, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "token", "token_issue", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "token", "token_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Issue(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, token, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Verify error", func(t *testing.T) {
		mockNext := &mockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		tokenID := uuid.Must(uuid.NewV7())
		expectedErr := errors.New("error")

		mockNext.On("Verify", ctx, tokenID, tokenDomain.FollowAuthorizationScope).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "token", "token_verify", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "token", "token_verify", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Verify(ctx, tokenID, tokenDomain.FollowAuthorizationScope)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Revoke success", func(t *testing.T) {
		mockNext := &mockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		tokenID := uuid.Must(uuid.NewV7())
		requesterID := uuid.Must(uuid.NewV7())

		mockNext.On("Revoke", ctx, tokenID, requesterID).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "token", "token_revoke", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "token", "token_revoke", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.Revoke(ctx, tokenID, requesterID)
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
