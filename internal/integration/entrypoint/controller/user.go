// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecommerce/backend/internal/application/usecase/auth"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
	"github.com/ecommerce/backend/internal/integration/entrypoint/dto"
)

// UserController handles user management endpoints.
type UserController struct {
	registerUseCase *auth.RegisterUserUseCase
	getUserUseCase  *auth.GetUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *auth.RegisterUserUseCase,
	getUserUseCase *auth.GetUserUseCase,
) *UserController {
	return &UserController{
		registerUseCase: registerUseCase,
		getUserUseCase:  getUserUseCase,
	}
}

// Register handles POST /users requests.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.RegisterUserInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Get handles GET /users/:username requests.
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.getUserUseCase.Execute(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *UserController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error:   authErr.Message,
			Code:    string(authErr.Code),
			Details: authErr.Details,
		})
		return
	}

	slog.Error("Unhandled user error", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *UserController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeUsernameExists:
		return http.StatusConflict
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusForbidden
	case domainerror.ErrCodeUpstream:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
