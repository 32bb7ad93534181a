// Package dto provides data transfer objects for relationship HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/clubhouse/internal/validation"
)

// CreateFollowRequest contains the parameters for creating a follow relationship.
type CreateFollowRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
	TokenID  string `json:"token_id"`
}

// Validate checks if the create follow request is valid.
func (r *CreateFollowRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SourceID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.TargetID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.TokenID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
