package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

// GetUserUseCase looks up a user by username for authenticated callers.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute returns the user or an AuthError with ErrCodeUserNotFound.
func (uc *GetUserUseCase) Execute(ctx context.Context, username string) (*entity.User, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"username not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
