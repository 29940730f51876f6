package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
)

func TestLoginUserUseCase_Execute(t *testing.T) {
	tests := []struct {
		name            string
		username        string
		password        string
		wantAuth        bool
		wantReason      entity.RejectionReason
		wantAuditResult entity.AuditOutcome
	}{
		{
			name:            "valid credentials",
			username:        "alice",
			password:        "84TTdpnend#x",
			wantAuth:        true,
			wantAuditResult: entity.AuditOutcomeSuccess,
		},
		{
			name:            "wrong password",
			username:        "alice",
			password:        "wrong",
			wantReason:      entity.RejectionBadCredentials,
			wantAuditResult: entity.AuditOutcomeFailure,
		},
		{
			name:            "empty password",
			username:        "alice",
			password:        "",
			wantReason:      entity.RejectionBadCredentials,
			wantAuditResult: entity.AuditOutcomeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubCredentialVerifier{password: "84TTdpnend#x"}
			tokens := newStubTokenService()
			audit := &recordingAuditLog{}
			uc := NewLoginUserUseCase(verifier, tokens, audit)

			output, err := uc.Execute(context.Background(), LoginUserInput{
				Credentials: entity.Credentials{Username: tt.username, Password: tt.password},
				ClientIP:    "10.0.0.1",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Outcome.IsAuthenticated() != tt.wantAuth {
				t.Fatalf("expected authenticated=%v, got %v", tt.wantAuth, output.Outcome.IsAuthenticated())
			}
			if tt.wantAuth {
				if output.Outcome.Subject() != tt.username {
					t.Errorf("expected subject %q, got %q", tt.username, output.Outcome.Subject())
				}
				if output.Token == nil || output.Token.Subject != tt.username {
					t.Errorf("expected token for %q, got %+v", tt.username, output.Token)
				}
			} else {
				if output.Outcome.Reason() != tt.wantReason {
					t.Errorf("expected reason %s, got %s", tt.wantReason, output.Outcome.Reason())
				}
				if output.Token != nil {
					t.Error("expected no token on rejection")
				}
				if tokens.calls != 0 {
					t.Errorf("expected no token to be issued, got %d calls", tokens.calls)
				}
			}

			if len(audit.entries) != 1 {
				t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
			}
			entry := audit.entries[0]
			if entry.Outcome != tt.wantAuditResult {
				t.Errorf("expected audit outcome %s, got %s", tt.wantAuditResult, entry.Outcome)
			}
			if entry.Username != tt.username || entry.ClientIP != "10.0.0.1" {
				t.Errorf("unexpected audit entry: %+v", entry)
			}
		})
	}
}

func TestLoginUserUseCase_Execute_UpstreamFailure(t *testing.T) {
	verifier := &stubCredentialVerifier{
		err: fmt.Errorf("%w: %v", domainerror.ErrUpstreamUnavailable, errStoreDown),
	}
	tokens := newStubTokenService()
	audit := &recordingAuditLog{}
	uc := NewLoginUserUseCase(verifier, tokens, audit)

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Credentials: entity.Credentials{Username: "alice", Password: "84TTdpnend#x"},
	})
	if output != nil {
		t.Fatalf("expected no output, got %+v", output)
	}

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeUpstream {
		t.Fatalf("expected upstream AuthError, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrUpstreamUnavailable) {
		t.Error("expected error to wrap ErrUpstreamUnavailable")
	}
	if tokens.calls != 0 {
		t.Error("expected no token to be issued")
	}
	if verifier.calls != 1 {
		t.Errorf("expected exactly one verification attempt, got %d", verifier.calls)
	}
	if len(audit.entries) != 1 || audit.entries[0].Reason != auditReasonUpstream {
		t.Errorf("expected one upstream failure audit entry, got %+v", audit.entries)
	}
}

func TestLoginUserUseCase_Execute_IssueFailure(t *testing.T) {
	tokens := newStubTokenService()
	tokens.issueErr = errors.New("signing failed")
	audit := &recordingAuditLog{}
	uc := NewLoginUserUseCase(&stubCredentialVerifier{password: "84TTdpnend#x"}, tokens, audit)

	_, err := uc.Execute(context.Background(), LoginUserInput{
		Credentials: entity.Credentials{Username: "alice", Password: "84TTdpnend#x"},
	})
	if err == nil {
		t.Fatal("expected error when token issuance fails")
	}
	if len(audit.entries) != 0 {
		t.Errorf("expected no success audit entry, got %+v", audit.entries)
	}
}

func TestLoginUserUseCase_Execute_AuditFailureDoesNotFailLogin(t *testing.T) {
	audit := &recordingAuditLog{err: errors.New("redis down")}
	uc := NewLoginUserUseCase(&stubCredentialVerifier{password: "84TTdpnend#x"}, newStubTokenService(), audit)

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Credentials: entity.Credentials{Username: "alice", Password: "84TTdpnend#x"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Outcome.IsAuthenticated() {
		t.Error("expected login to succeed despite audit failure")
	}
}

func TestLoginUserUseCase_Execute_NilAuditLog(t *testing.T) {
	uc := NewLoginUserUseCase(&stubCredentialVerifier{password: "84TTdpnend#x"}, newStubTokenService(), nil)

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Credentials: entity.Credentials{Username: "alice", Password: "nope"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Outcome.IsAuthenticated() {
		t.Error("expected rejection")
	}
}
