package auth

import (
	"context"
	"errors"
	"time"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
	domainerror "github.com/ecommerce/backend/internal/domain/error"
	"github.com/ecommerce/backend/internal/domain/valueobject"
)

type stubUserRepository struct {
	users     map[string]*entity.User
	findErr   error
	existsErr error
	createErr error
	created   []*entity.User
}

func newStubUserRepository(users ...*entity.User) *stubUserRepository {
	repo := &stubUserRepository{users: map[string]*entity.User{}}
	for _, user := range users {
		repo.users[user.Username] = user
	}
	return repo
}

func (r *stubUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Username] = user
	r.created = append(r.created, user)
	return nil
}

func (r *stubUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.users[username]
	return ok, nil
}

// stubPasswordService "hashes" by prefixing, which keeps the tests free of bcrypt cost.
type stubPasswordService struct {
	err error
}

func (s *stubPasswordService) HashPassword(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "hashed:" + password, nil
}

func (s *stubPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubPasswordValidator struct {
	result valueobject.PasswordPolicyResult
	calls  int
}

func (v *stubPasswordValidator) Validate(password, confirmation string) valueobject.PasswordPolicyResult {
	v.calls++
	return v.result
}

type stubCredentialVerifier struct {
	password string
	err      error
	calls    int
}

func (v *stubCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	v.calls++
	if v.err != nil {
		return v.err
	}
	if password != v.password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// stubTokenService accepts exactly the tokens it issued.
type stubTokenService struct {
	issued   map[string]string
	issueErr error
	calls    int
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{issued: map[string]string{}}
}

func (s *stubTokenService) Issue(subject string) (*adapter.IssuedToken, error) {
	s.calls++
	if s.issueErr != nil {
		return nil, s.issueErr
	}
	now := time.Now().UTC()
	token := "token-for-" + subject
	s.issued[token] = subject
	return &adapter.IssuedToken{
		Token:     token,
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}

func (s *stubTokenService) Verify(token string) (*adapter.TokenClaims, error) {
	subject, ok := s.issued[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{Subject: subject}, nil
}

type recordingAuditLog struct {
	entries []entity.AuditEntry
	err     error
}

func (r *recordingAuditLog) Record(ctx context.Context, entry entity.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return r.err
}

var errStoreDown = errors.New("connection refused")
