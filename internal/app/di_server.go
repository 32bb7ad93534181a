package app

import (
	"fmt"

	"github.com/allisson/clubhouse/internal/http"
	identityHTTP "github.com/allisson/clubhouse/internal/identity/http"
	relationshipHTTP "github.com/allisson/clubhouse/internal/relationship/http"
	reportHTTP "github.com/allisson/clubhouse/internal/report/http"
	tokenHTTP "github.com/allisson/clubhouse/internal/token/http"
)

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	identities, err := c.IdentityUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity use case for http server: %w", err)
	}

	tokens, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for http server: %w", err)
	}

	relationships, err := c.RelationshipUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get relationship use case for http server: %w", err)
	}

	reports, err := c.ReportUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get report use case for http server: %w", err)
	}

	server := http.NewServer(
		c.config,
		logger,
		metricsProvider,
		identityHTTP.NewIdentityHandler(identities, logger),
		tokenHTTP.NewTokenHandler(tokens, logger),
		relationshipHTTP.NewRelationshipHandler(relationships, logger),
		reportHTTP.NewReportHandler(reports, logger),
	)

	return server, nil
}
