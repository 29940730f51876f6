package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo          adapter.UserRepository
	passwordService   adapter.PasswordService
	passwordValidator adapter.PasswordValidator
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	passwordValidator adapter.PasswordValidator,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:          userRepo,
		passwordService:   passwordService,
		passwordValidator: passwordValidator,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username must not be blank",
			domainerror.ErrMalformedRequest,
		)
	}

	// Reject on policy before touching the store
	result := uc.passwordValidator.Validate(input.Password, input.ConfirmPassword)
	if !result.Passed {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			result.Reason.Message(),
			domainerror.ErrWeakPassword,
		).WithDetails(string(result.Reason))
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, usernameExistsError()
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, passwordHash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
			return nil, usernameExistsError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}

func usernameExistsError() *domainerror.AuthError {
	return domainerror.NewAuthError(
		domainerror.ErrCodeUsernameExists,
		"username already exists",
		domainerror.ErrUsernameAlreadyExists,
	)
}
