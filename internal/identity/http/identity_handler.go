// Package http provides HTTP handlers for identity registry operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/clubhouse/internal/httputil"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	identityUseCase "github.com/allisson/clubhouse/internal/identity/usecase"
	customValidation "github.com/allisson/clubhouse/internal/validation"
)

// IdentityHandler handles HTTP requests for identity registry operations.
type IdentityHandler struct {
	identityUseCase identityUseCase.IdentityUseCase
	logger          *slog.Logger
}

// NewIdentityHandler creates a new identity handler with required dependencies.
func NewIdentityHandler(
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
) *IdentityHandler {
	return &IdentityHandler{
		identityUseCase: useCase,
		logger:          logger,
	}
}

// CreateIdentityRequest contains the parameters for registering a new identity.
type CreateIdentityRequest struct {
	DisplayName string   `json:"display_name"`
	Permissions []string `json:"permissions"`
}

// Validate checks if the create identity request is valid.
func (r *CreateIdentityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DisplayName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Permissions,
			validation.Each(validation.By(validatePermission)),
		),
	)
}

// validatePermission checks that a permission flag is one of the known values.
func validatePermission(value interface{}) error {
	permission, ok := value.(string)
	if !ok {
		return validation.NewError("validation_permission_type", "must be a string")
	}

	switch identityDomain.Permission(permission) {
	case identityDomain.AuthorizeRelationshipsPermission, identityDomain.RevokeAnyTokenPermission:
		return nil
	}
	return validation.NewError("validation_permission_unknown", "unknown permission flag")
}

// IdentityResponse represents an identity in API responses.
type IdentityResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewIdentityResponse converts a domain identity to its API representation.
func NewIdentityResponse(identity *identityDomain.Identity) IdentityResponse {
	permissions := make([]string, 0, len(identity.Permissions))
	for _, permission := range identity.Permissions {
		permissions = append(permissions, string(permission))
	}

	return IdentityResponse{
		ID:          identity.ID.String(),
		DisplayName: identity.DisplayName,
		Permissions: permissions,
		CreatedAt:   identity.CreatedAt,
	}
}

// CreateIdentityHandler registers a new identity.
// POST /v1/identities - Returns 201 Created with the stored identity.
func (h *IdentityHandler) CreateIdentityHandler(c *gin.Context) {
	var req CreateIdentityRequest

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

	permissions := make([]identityDomain.Permission, 0, len(req.Permissions))
	for _, permission := range req.Permissions {
		permissions = append(permissions, identityDomain.Permission(permission))
	}

	input := &identityDomain.CreateIdentityInput{
		DisplayName: req.DisplayName,
		Permissions: permissions,
	}

	identity, err := h.identityUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, NewIdentityResponse(identity))
}

// GetIdentityHandler retrieves an identity by ID.
// GET /v1/identities/:id - Returns 200 OK or 404 Not Found.
func (h *IdentityHandler) GetIdentityHandler(c *gin.Context) {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid identity id: must be a valid UUID"),
			h.logger)
		return
	}

	identity, err := h.identityUseCase.Get(c.Request.Context(), identityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, NewIdentityResponse(identity))
}
