package app

import (
	identityRepository "github.com/allisson/clubhouse/internal/identity/repository"
	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
)

// IdentityRepository returns the identity repository instance.
func (c *Container) IdentityRepository() identityUseCase.IdentityRepository {
	c.identityRepoInit.Do(func() {
		c.identityRepo = identityRepository.NewMemoryIdentityRepository()
	})
	return c.identityRepo
}

// IdentityUseCase returns the identity use case instance, wrapped with
// metrics instrumentation.
func (c *Container) IdentityUseCase() (identityUseCase.IdentityUseCase, error) {
	c.identityUseCaseInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["identityUseCase"] = err
			return
		}

		useCase := identityUseCase.NewIdentityUseCase(c.Clock(), c.IdentityRepository())
		c.identityUseCase = identityUseCase.NewIdentityUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["identityUseCase"]; exists {
		return nil, storedErr
	}
	return c.identityUseCase, nil
}
