// Package error defines domain-specific errors for the eCommerce application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned by the user store when no user matches.
	// It never reaches a login caller; the login path maps it to ErrInvalidCredentials.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid,
	// whether the username is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is forged, malformed or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken is returned when no bearer token is presented.
	ErrMissingToken = errors.New("missing token")

	// ErrWeakPassword is returned when the provided password does not meet the policy.
	ErrWeakPassword = errors.New("password does not meet complexity requirements")

	// ErrMalformedRequest is returned when a request body cannot be decoded.
	ErrMalformedRequest = errors.New("malformed request body")

	// ErrUpstreamUnavailable is returned when the user store fails.
	ErrUpstreamUnavailable = errors.New("user store unavailable")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeUsernameExists AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword   AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields  AuthErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeUpstream           AuthErrorCode = "AUTH-020004"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Details string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns the error with a machine-readable detail attached.
func (e *AuthError) WithDetails(details string) *AuthError {
	e.Details = details
	return e
}
