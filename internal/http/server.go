// Package http provides the HTTP server and route wiring.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/config"
	identityHTTP "github.com/allisson/clubhouse/internal/identity/http"
	"github.com/allisson/clubhouse/internal/metrics"
	relationshipHTTP "github.com/allisson/clubhouse/internal/relationship/http"
	reportHTTP "github.com/allisson/clubhouse/internal/report/http"
	tokenHTTP "github.com/allisson/clubhouse/internal/token/http"
)

// Server represents the API HTTP server.
type Server struct {
	server              *http.Server
	router              *gin.Engine
	logger              *slog.Logger
	cfg                 *config.Config
	metricsProvider     *metrics.Provider
	identityHandler     *identityHTTP.IdentityHandler
	tokenHandler        *tokenHTTP.TokenHandler
	relationshipHandler *relationshipHTTP.RelationshipHandler
	reportHandler       *reportHTTP.ReportHandler
}

// NewServer creates a new HTTP server with the provided handlers. The metrics
// provider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	identityHandler *identityHTTP.IdentityHandler,
	tokenHandler *tokenHTTP.TokenHandler,
	relationshipHandler *relationshipHTTP.RelationshipHandler,
	reportHandler *reportHTTP.ReportHandler,
) *Server {
	return &Server{
		logger:              logger,
		cfg:                 cfg,
		metricsProvider:     metricsProvider,
		identityHandler:     identityHandler,
		tokenHandler:        tokenHandler,
		relationshipHandler: relationshipHandler,
		reportHandler:       reportHandler,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with middleware and all API routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		v1.POST("/identities", s.identityHandler.CreateIdentityHandler)
		v1.GET("/identities/:id", s.identityHandler.GetIdentityHandler)
		v1.GET("/identities/:id/following", s.relationshipHandler.ListFollowingHandler)
		v1.GET("/identities/:id/followers", s.relationshipHandler.ListFollowersHandler)

		v1.POST("/tokens", s.tokenHandler.IssueTokenHandler)
		v1.GET("/tokens/:id/verify", s.tokenHandler.VerifyTokenHandler)
		v1.POST("/tokens/:id/revoke", s.tokenHandler.RevokeTokenHandler)
		v1.POST("/tokens/:id/extend", s.tokenHandler.ExtendTokenHandler)
		v1.POST("/tokens/cleanup-expired", s.tokenHandler.CleanupExpiredHandler)

		v1.POST("/follows", s.relationshipHandler.CreateFollowHandler)
		v1.GET("/relationships", s.relationshipHandler.ListRelationshipsHandler)
		v1.GET("/relationships/:id/verify", s.relationshipHandler.VerifyBackingHandler)

		v1.GET("/stats", s.reportHandler.StatsHandler)
	}

	s.router = router
	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to serve traffic. The stores are
// in-memory, so the server is ready as soon as it is running.
func (s *Server) readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
