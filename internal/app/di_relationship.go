package app

import (
	relationshipRepository "github.com/allisson/clubhouse/internal/relationship/repository"
	relationshipUseCase "github.com/allisson/clubhouse/internal/relationship/usecase"
)

// RelationshipRepository returns the relationship repository instance.
func (c *Container) RelationshipRepository() relationshipUseCase.RelationshipRepository {
	c.relationshipRepoInit.Do(func() {
		c.relationshipRepo = relationshipRepository.NewMemoryRelationshipRepository()
	})
	return c.relationshipRepo
}

// RelationshipUseCase returns the relationship use case instance, wrapped
// with metrics instrumentation.
func (c *Container) RelationshipUseCase() (relationshipUseCase.RelationshipUseCase, error) {
	c.relationshipUseCaseInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["relationshipUseCase"] = err
			return
		}

		tokens, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["relationshipUseCase"] = err
			return
		}

		useCase := relationshipUseCase.NewRelationshipUseCase(
			c.Clock(),
			c.IdentityRepository(),
			c.RelationshipRepository(),
			tokens,
		)
		c.relationshipUseCase = relationshipUseCase.NewRelationshipUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["relationshipUseCase"]; exists {
		return nil, storedErr
	}
	return c.relationshipUseCase, nil
}
