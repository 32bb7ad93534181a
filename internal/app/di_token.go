package app

import (
	tokenRepository "github.com/allisson/clubhouse/internal/token/repository"
	tokenService "github.com/allisson/clubhouse/internal/token/service"
	tokenUseCase "github.com/allisson/clubhouse/internal/token/usecase"
)

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() tokenUseCase.TokenRepository {
	c.tokenRepoInit.Do(func() {
		c.tokenRepo = tokenRepository.NewMemoryTokenRepository()
	})
	return c.tokenRepo
}

// TokenService returns the token service instance.
func (c *Container) TokenService() tokenService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = tokenService.NewTokenService()
	})
	return c.tokenService
}

// TokenUseCase returns the token use case instance, wrapped with metrics
// instrumentation.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}

		useCase := tokenUseCase.NewTokenUseCase(
			c.config,
			c.Clock(),
			c.IdentityRepository(),
			c.TokenRepository(),
			c.TokenService(),
		)
		c.tokenUseCase = tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}
