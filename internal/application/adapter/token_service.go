// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	Token     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims represents the verified claims of a bearer token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for signing and verifying bearer tokens.
// Verification is a local check: no store is consulted.
type TokenService interface {
	// Issue signs a token for the subject, valid for the configured lifetime.
	Issue(subject string) (*IssuedToken, error)

	// Verify checks signature and expiry. Every failure is domainerror.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}
