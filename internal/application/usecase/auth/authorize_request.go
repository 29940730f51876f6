package auth

import (
	"strings"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
)

// AuthorizeRequestUseCase checks the bearer token presented on a protected request.
// It is a purely local check: no user store lookup happens here.
type AuthorizeRequestUseCase struct {
	tokenService adapter.TokenService
	tokenPrefix  string
}

// NewAuthorizeRequestUseCase creates a new AuthorizeRequestUseCase instance.
func NewAuthorizeRequestUseCase(tokenService adapter.TokenService, tokenPrefix string) *AuthorizeRequestUseCase {
	return &AuthorizeRequestUseCase{
		tokenService: tokenService,
		tokenPrefix:  tokenPrefix,
	}
}

// Execute maps the raw header value to an outcome.
func (uc *AuthorizeRequestUseCase) Execute(headerValue string) entity.AuthenticationOutcome {
	if headerValue == "" || !strings.HasPrefix(headerValue, uc.tokenPrefix) {
		return entity.Rejected(entity.RejectionMissingToken)
	}

	claims, err := uc.tokenService.Verify(strings.TrimPrefix(headerValue, uc.tokenPrefix))
	if err != nil {
		return entity.Rejected(entity.RejectionInvalidToken)
	}
	return entity.Authenticated(claims.Subject)
}
