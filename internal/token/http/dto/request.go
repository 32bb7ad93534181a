// Package dto provides data transfer objects for token HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/clubhouse/internal/validation"
)

// IssueTokenRequest contains the parameters for issuing an authorization token.
type IssueTokenRequest struct {
	IssuerID string `json:"issuer_id"`
	Scope    string `json:"scope"`
	// LifetimeSeconds is optional; the configured default applies when omitted.
	LifetimeSeconds int64 `json:"lifetime_seconds,omitempty"`
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IssuerID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Scope,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.LifetimeSeconds,
			validation.Min(0),
		),
	)
}

// RevokeTokenRequest contains the parameters for revoking a token.
type RevokeTokenRequest struct {
	RequesterID string `json:"requester_id"`
}

// Validate checks if the revoke token request is valid.
func (r *RevokeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RequesterID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// ExtendTokenRequest contains the parameters for extending a token's expiration.
type ExtendTokenRequest struct {
	RequesterID  string `json:"requester_id"`
	ExtraSeconds int64  `json:"extra_seconds"`
}

// Validate checks if the extend token request is valid.
func (r *ExtendTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RequesterID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.ExtraSeconds,
			validation.Required,
			validation.Min(1),
		),
	)
}
