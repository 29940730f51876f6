// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecommerce/backend/internal/application/adapter"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

// tokenService implements the adapter.TokenService interface with HS512 JWTs.
// All fields are read-only after construction.
type tokenService struct {
	secret   []byte
	lifetime time.Duration
	issuer   string
	now      func() time.Time
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, lifetime time.Duration, issuer string) adapter.TokenService {
	return NewTokenServiceWithClock(secret, lifetime, issuer, time.Now)
}

// NewTokenServiceWithClock creates a token service that reads time from now.
func NewTokenServiceWithClock(secret string, lifetime time.Duration, issuer string, now func() time.Time) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
		issuer:   issuer,
		now:      now,
	}
}

// Issue signs a token whose subject and expiry are both covered by the signature.
func (s *tokenService) Issue(subject string) (*adapter.IssuedToken, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.lifetime)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.IssuedToken{
		Token:     signed,
		Subject:   subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify recomputes the HMAC over header and claims and checks the expiry.
// The cause of a failure is deliberately collapsed into ErrInvalidToken.
func (s *tokenService) Verify(tokenString string) (*adapter.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, domainerror.ErrInvalidToken
	}

	result := &adapter.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
