// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

// API error codes returned in APIError.Code.
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// APIError is the JSON body returned for every non-2xx response.
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "Validation failed",
//	  "details": {"ipAddress": "Must be a valid IP address"}
//	}
type APIError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description of the error.
	// Internal detail (driver errors, SQL state) is never exposed here.
	Message string `json:"message"`

	// Details carries field-level validation errors, keyed by JSON field name.
	Details map[string]string `json:"details,omitempty"`
}
