package usecase

import (
	"context"

	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
	relationshipUseCase "github.com/allisson/clubhouse/internal/relationship/usecase"
	reportDomain "github.com/allisson/clubhouse/internal/report/domain"
	tokenUseCase "github.com/allisson/clubhouse/internal/token/usecase"
)

// reportUseCase implements ReportUseCase.
type reportUseCase struct {
	identityRepo     identityUseCase.IdentityRepository
	relationshipRepo relationshipUseCase.RelationshipRepository
	tokenUseCase     tokenUseCase.TokenUseCase
}

// Stats summarizes identities, tokens, and relationships.
func (u *reportUseCase) Stats(ctx context.Context) (*reportDomain.Report, error) {
	identities, err := u.identityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	tokenStats, err := u.tokenUseCase.Stats(ctx)
	if err != nil {
		return nil, err
	}

	total, active, err := u.relationshipRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &reportDomain.Report{
		Identities:          identities,
		Tokens:              *tokenStats,
		TotalRelationships:  total,
		ActiveRelationships: active,
	}, nil
}

// NewReportUseCase creates a new ReportUseCase with the provided dependencies.
func NewReportUseCase(
	identityRepo identityUseCase.IdentityRepository,
	relationshipRepo relationshipUseCase.RelationshipRepository,
	tokens tokenUseCase.TokenUseCase,
) ReportUseCase {
	return &reportUseCase{
		identityRepo:     identityRepo,
		relationshipRepo: relationshipRepo,
		tokenUseCase:     tokens,
	}
}
