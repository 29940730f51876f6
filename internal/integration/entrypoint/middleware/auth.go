// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecommerce/backend/internal/application/usecase/auth"
	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
	"github.com/ecommerce/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UsernameKey is the context key for the authenticated principal.
	UsernameKey ContextKey = "username"
)

// LoginFilter is the contract of a login endpoint that intercepts credential submissions.
// AttemptAuthentication returns an error only when the request could not be evaluated
// at all; bad credentials are reported through the outcome.
type LoginFilter interface {
	AttemptAuthentication(c *gin.Context) (*auth.LoginUserOutput, error)
	OnSuccess(c *gin.Context, output *auth.LoginUserOutput)
	OnFailure(c *gin.Context, outcome entity.AuthenticationOutcome)
}

// LoginHandler adapts a LoginFilter to a Gin handler.
func LoginHandler(filter LoginFilter) gin.HandlerFunc {
	return func(c *gin.Context) {
		output, err := filter.AttemptAuthentication(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		if output.Outcome.IsAuthenticated() {
			filter.OnSuccess(c, output)
			return
		}
		filter.OnFailure(c, output.Outcome)
	}
}

// AuthenticationGate authenticates logins and authorizes protected requests.
type AuthenticationGate struct {
	loginUseCase     *auth.LoginUserUseCase
	authorizeUseCase *auth.AuthorizeRequestUseCase
	headerName       string
	tokenPrefix      string
}

// NewAuthenticationGate creates a new authentication gate instance.
func NewAuthenticationGate(
	loginUseCase *auth.LoginUserUseCase,
	authorizeUseCase *auth.AuthorizeRequestUseCase,
	headerName string,
	tokenPrefix string,
) *AuthenticationGate {
	return &AuthenticationGate{
		loginUseCase:     loginUseCase,
		authorizeUseCase: authorizeUseCase,
		headerName:       headerName,
		tokenPrefix:      tokenPrefix,
	}
}

// AttemptAuthentication decodes the credentials from the body and verifies them.
func (g *AuthenticationGate) AttemptAuthentication(c *gin.Context) (*auth.LoginUserOutput, error) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"Invalid request body",
			domainerror.ErrMalformedRequest,
		)
	}

	return g.loginUseCase.Execute(c.Request.Context(), auth.LoginUserInput{
		Credentials: entity.Credentials{Username: req.Username, Password: req.Password},
		ClientIP:    c.ClientIP(),
	})
}

// OnSuccess attaches the issued token to the response header.
func (g *AuthenticationGate) OnSuccess(c *gin.Context, output *auth.LoginUserOutput) {
	c.Header(g.headerName, g.tokenPrefix+output.Token.Token)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Username:  output.Token.Subject,
		ExpiresAt: output.Token.ExpiresAt,
	})
}

// OnFailure answers 401 with no body so the response says nothing about which check failed.
func (g *AuthenticationGate) OnFailure(c *gin.Context, outcome entity.AuthenticationOutcome) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

// Authorize returns a Gin middleware handler that enforces bearer token authentication.
func (g *AuthenticationGate) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome := g.authorizeUseCase.Execute(c.GetHeader(g.headerName))
		if !outcome.IsAuthenticated() {
			code := domainerror.ErrCodeInvalidToken
			if outcome.Reason() == entity.RejectionMissingToken {
				code = domainerror.ErrCodeMissingToken
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Access denied",
				Code:  string(code),
			})
			return
		}

		c.Set(string(UsernameKey), outcome.Subject())
		c.Next()
	}
}

// GetUsernameFromContext extracts the authenticated principal from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(UsernameKey))
	if !exists {
		return "", false
	}
	usernameStr, ok := username.(string)
	return usernameStr, ok
}

func abortWithError(c *gin.Context, err error) {
	var authErr *domainerror.AuthError
	switch {
	case errors.Is(err, domainerror.ErrMalformedRequest):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
	case errors.Is(err, domainerror.ErrUpstreamUnavailable) && errors.As(err, &authErr):
		slog.Error("Login failed on user store", "error", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	default:
		slog.Error("Login failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
