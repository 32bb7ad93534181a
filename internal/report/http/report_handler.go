// Package http provides the HTTP handler for system reporting.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/clubhouse/internal/httputil"
	reportDomain "github.com/allisson/clubhouse/internal/report/domain"
	reportUseCase "github.com/allisson/clubhouse/internal/report/usecase"
)

// ReportHandler handles HTTP requests for system reporting.
type ReportHandler struct {
	reportUseCase reportUseCase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler with required dependencies.
func NewReportHandler(
	useCase reportUseCase.ReportUseCase,
	logger *slog.Logger,
) *ReportHandler {
	return &ReportHandler{
		reportUseCase: useCase,
		logger:        logger,
	}
}

// TokenStatsResponse breaks token counts down by status.
type TokenStatsResponse struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
	Revoked int `json:"revoked"`
}

// StatsResponse represents the system summary in API responses.
type StatsResponse struct {
	Identities          int                `json:"identities"`
	Tokens              TokenStatsResponse `json:"tokens"`
	TotalRelationships  int                `json:"total_relationships"`
	ActiveRelationships int                `json:"active_relationships"`
}

// NewStatsResponse converts a domain report to its API representation.
func NewStatsResponse(report *reportDomain.Report) StatsResponse {
	return StatsResponse{
		Identities: report.Identities,
		Tokens: TokenStatsResponse{
			Total:   report.Tokens.Total,
			Active:  report.Tokens.Active,
			Expired: report.Tokens.Expired,
			Revoked: report.Tokens.Revoked,
		},
		TotalRelationships:  report.TotalRelationships,
		ActiveRelationships: report.ActiveRelationships,
	}
}

// StatsHandler returns the system summary.
// GET /v1/stats - Returns 200 OK with current counts.
func (h *ReportHandler) StatsHandler(c *gin.Context) {
	report, err := h.reportUseCase.Stats(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(report))
}
