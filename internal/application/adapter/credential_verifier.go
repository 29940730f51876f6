package adapter

import "context"

// CredentialVerifier checks a username/password pair against the user store.
//
// Verify returns nil on success, domainerror.ErrInvalidCredentials for an unknown
// user or a wrong password (never distinguishable), and an error wrapping
// domainerror.ErrUpstreamUnavailable when the store itself fails.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) error
}
