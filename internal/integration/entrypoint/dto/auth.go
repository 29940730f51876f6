// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"
)

// LoginRequest represents the request body for user login.
// Absent fields decode as empty strings and are rejected as bad credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the body of a successful login.
// The token itself travels in the authorization response header.
type LoginResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
