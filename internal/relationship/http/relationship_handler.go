// Package http provides HTTP handlers for relationship manager operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/httputil"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
	"github.com/allisson/clubhouse/internal/relationship/http/dto"
	relationshipUseCase "github.com/allisson/clubhouse/internal/relationship/usecase"
	customValidation "github.com/allisson/clubhouse/internal/validation"
)

// RelationshipHandler handles HTTP requests for relationship operations.
type RelationshipHandler struct {
	relationshipUseCase relationshipUseCase.RelationshipUseCase
	logger              *slog.Logger
}

// NewRelationshipHandler creates a new relationship handler with required dependencies.
func NewRelationshipHandler(
	useCase relationshipUseCase.RelationshipUseCase,
	logger *slog.Logger,
) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipUseCase: useCase,
		logger:              logger,
	}
}

// CreateFollowHandler creates a token-gated follow relationship.
// POST /v1/follows - Returns 201 Created with the stored relationship.
func (h *RelationshipHandler) CreateFollowHandler(c *gin.Context) {
	var req dto.CreateFollowRequest

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

	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid source_id format: must be a valid UUID"),
			h.logger)
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid target_id format: must be a valid UUID"),
			h.logger)
		return
	}

	tokenID, err := uuid.Parse(req.TokenID)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token_id format: must be a valid UUID"),
			h.logger)
		return
	}

	input := &relationshipDomain.CreateFollowInput{
		SourceID: sourceID,
		TargetID: targetID,
		TokenID:  tokenID,
	}

	relationship, err := h.relationshipUseCase.CreateFollow(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRelationshipResponse(relationship))
}

// ListFollowingHandler lists the identities an identity follows.
// GET /v1/identities/:id/following - Returns 200 OK with the identity list.
func (h *RelationshipHandler) ListFollowingHandler(c *gin.Context) {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid identity id: must be a valid UUID"),
			h.logger)
		return
	}

	identities, err := h.relationshipUseCase.ListFollowing(c.Request.Context(), identityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewIdentityListResponse(identities))
}

// ListFollowersHandler lists the identities following an identity.
// GET /v1/identities/:id/followers - Returns 200 OK with the identity list.
func (h *RelationshipHandler) ListFollowersHandler(c *gin.Context) {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid identity id: must be a valid UUID"),
			h.logger)
		return
	}

	identities, err := h.relationshipUseCase.ListFollowers(c.Request.Context(), identityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewIdentityListResponse(identities))
}

// ListRelationshipsHandler lists every stored relationship.
// GET /v1/relationships - Returns 200 OK with the relationship list.
func (h *RelationshipHandler) ListRelationshipsHandler(c *gin.Context) {
	relationships, err := h.relationshipUseCase.ListAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewRelationshipListResponse(relationships))
}

// VerifyBackingHandler re-verifies the token behind an existing relationship.
// GET /v1/relationships/:id/verify - Returns 200 OK with the backing verdict.
func (h *RelationshipHandler) VerifyBackingHandler(c *gin.Context) {
	relationshipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid relationship id: must be a valid UUID"),
			h.logger)
		return
	}

	backed, err := h.relationshipUseCase.VerifyBacking(c.Request.Context(), relationshipID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyBackingResponse{
		RelationshipID: relationshipID.String(),
		Backed:         backed,
	})
}
