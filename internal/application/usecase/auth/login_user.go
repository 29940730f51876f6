// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

// auditReasonUpstream marks audit entries for logins that failed on the user store.
const auditReasonUpstream = "UPSTREAM_FAILURE"

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Credentials entity.Credentials
	ClientIP    string
}

// LoginUserOutput represents the output of user login.
// Token is only set when Outcome is authenticated.
type LoginUserOutput struct {
	Outcome entity.AuthenticationOutcome
	Token   *adapter.IssuedToken
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	credentialVerifier adapter.CredentialVerifier
	tokenService       adapter.TokenService
	auditLog           adapter.AuditLog
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	credentialVerifier adapter.CredentialVerifier,
	tokenService adapter.TokenService,
	auditLog adapter.AuditLog,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		credentialVerifier: credentialVerifier,
		tokenService:       tokenService,
		auditLog:           auditLog,
	}
}

// Execute verifies the credentials and, only if they are valid, issues a token.
// Bad credentials are an outcome, not an error; a failing user store is an error.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := input.Credentials.Username

	err := uc.credentialVerifier.Verify(ctx, username, input.Credentials.Password)
	switch {
	case errors.Is(err, domainerror.ErrInvalidCredentials):
		uc.audit(ctx, username, input.ClientIP, entity.AuditOutcomeFailure, string(entity.RejectionBadCredentials))
		return &LoginUserOutput{Outcome: entity.Rejected(entity.RejectionBadCredentials)}, nil
	case err != nil:
		uc.audit(ctx, username, input.ClientIP, entity.AuditOutcomeFailure, auditReasonUpstream)
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUpstream,
			"authentication is temporarily unavailable",
			err,
		)
	}

	token, err := uc.tokenService.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.audit(ctx, username, input.ClientIP, entity.AuditOutcomeSuccess, "")
	return &LoginUserOutput{
		Outcome: entity.Authenticated(username),
		Token:   token,
	}, nil
}

// audit records the attempt. A failing audit sink never changes the login result.
func (uc *LoginUserUseCase) audit(ctx context.Context, username, clientIP string, outcome entity.AuditOutcome, reason string) {
	if uc.auditLog == nil {
		return
	}
	entry := entity.AuditEntry{
		Event:      entity.AuditEventLogin,
		Username:   username,
		Outcome:    outcome,
		Reason:     reason,
		ClientIP:   clientIP,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.auditLog.Record(ctx, entry); err != nil {
		slog.Warn("Failed to record audit entry", "error", err, "username", username)
	}
}
