package app

import (
	reportUseCase "github.com/allisson/clubhouse/internal/report/usecase"
)

// ReportUseCase returns the report use case instance.
func (c *Container) ReportUseCase() (reportUseCase.ReportUseCase, error) {
	c.reportUseCaseInit.Do(func() {
		tokens, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["reportUseCase"] = err
			return
		}

		c.reportUseCase = reportUseCase.NewReportUseCase(
			c.IdentityRepository(),
			c.RelationshipRepository(),
			tokens,
		)
	})
	if storedErr, exists := c.initErrors["reportUseCase"]; exists {
		return nil, storedErr
	}
	return c.reportUseCase, nil
}
