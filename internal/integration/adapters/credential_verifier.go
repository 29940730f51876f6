package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecommerce/backend/internal/application/adapter"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

// credentialVerifier implements adapter.CredentialVerifier over the user store.
type credentialVerifier struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	dummyHash       string
}

// NewCredentialVerifier creates a credential verifier. It hashes a throwaway
// password once so lookups of unknown users cost the same bcrypt work as real ones.
func NewCredentialVerifier(userRepo adapter.UserRepository, passwordService adapter.PasswordService) (adapter.CredentialVerifier, error) {
	dummyHash, err := passwordService.HashPassword("unknown-user-placeholder")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credential verifier: %w", err)
	}
	return &credentialVerifier{
		userRepo:        userRepo,
		passwordService: passwordService,
		dummyHash:       dummyHash,
	}, nil
}

// Verify checks the password for username.
func (v *credentialVerifier) Verify(ctx context.Context, username, password string) error {
	user, err := v.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			_ = v.passwordService.VerifyPassword(v.dummyHash, password)
			return domainerror.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", domainerror.ErrUpstreamUnavailable, err)
	}

	if err := v.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}
