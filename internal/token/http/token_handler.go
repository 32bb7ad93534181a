// Package http provides HTTP handlers for token manager operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/clubhouse/internal/errors"
	"github.com/allisson/clubhouse/internal/httputil"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
	"github.com/allisson/clubhouse/internal/token/http/dto"
	tokenUseCase "github.com/allisson/clubhouse/internal/token/usecase"
	customValidation "github.com/allisson/clubhouse/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// IssueTokenHandler issues a new authorization token.
// POST /v1/tokens - Returns 201 Created with the stored token.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	issuerID, err := uuid.Parse(req.IssuerID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid issuer_id format: must be a valid UUID"),
			h.logger)
		return
	}

	input := &tokenDomain.IssueTokenInput{
		IssuerID: issuerID,
		Scope:    tokenDomain.Scope(req.Scope),
		Lifetime: time.Duration(req.LifetimeSeconds) * time.Second,
	}

	token, err := h.tokenUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTokenResponse(token))
}

// VerifyTokenHandler verifies a token against a required scope.
// GET /v1/tokens/:id/verify?scope=<scope> - Returns 200 OK with the verdict.
//
// An invalid token is not an error of the verification endpoint itself: the
// response reports valid=false plus the reason, with status 200.
func (h *TokenHandler) VerifyTokenHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token id: must be a valid UUID"),
			h.logger)
		return
	}

	scope := c.Query("scope")
	if scope == "" {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("scope query parameter is required"),
			h.logger)
		return
	}

	token, err := h.tokenUseCase.Verify(c.Request.Context(), tokenID, tokenDomain.Scope(scope))
	if err != nil {
		if apperrors.Is(err, tokenDomain.ErrInvalidToken) {
			c.JSON(http.StatusOK, dto.VerifyTokenResponse{
				Valid:  false,
				Reason: err.Error(),
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.NewTokenResponse(token)
	c.JSON(http.StatusOK, dto.VerifyTokenResponse{
		Valid: true,
		Token: &response,
	})
}

// RevokeTokenHandler revokes a token.
// POST /v1/tokens/:id/revoke - Returns 204 No Content on success.
func (h *TokenHandler) RevokeTokenHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token id: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.RevokeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid requester_id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.tokenUseCase.Revoke(c.Request.Context(), tokenID, requesterID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExtendTokenHandler extends the expiration of an active token.
// POST /v1/tokens/:id/extend - Returns 204 No Content on success.
func (h *TokenHandler) ExtendTokenHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token id: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.ExtendTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid requester_id format: must be a valid UUID"),
			h.logger)
		return
	}

	extra := time.Duration(req.ExtraSeconds) * time.Second
	if err := h.tokenUseCase.ExtendExpiry(c.Request.Context(), tokenID, requesterID, extra); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// CleanupExpiredHandler flips every active-but-overdue token to expired.
// POST /v1/tokens/cleanup-expired - Returns 200 OK with the count.
func (h *TokenHandler) CleanupExpiredHandler(c *gin.Context) {
	count, err := h.tokenUseCase.CleanupExpired(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CleanupExpiredResponse{ExpiredCount: count})
}
