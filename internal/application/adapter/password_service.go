// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/ecommerce/backend/internal/domain/valueobject"

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}

// PasswordValidator evaluates a candidate password against the complexity policy.
type PasswordValidator interface {
	Validate(password, confirmPassword string) valueobject.PasswordPolicyResult
}
