package adapters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/valueobject"
)

// passwordRule reports whether a password satisfies one complexity rule.
type passwordRule struct {
	reason valueobject.FailureReason
	check  func(password string) bool
}

// passwordRules are evaluated in order; the first failure is the one reported.
var passwordRules = []passwordRule{
	{valueobject.ReasonMinLength, func(p string) bool {
		return utf8.RuneCountInString(p) >= valueobject.PasswordMinLength
	}},
	{valueobject.ReasonMinDigits, func(p string) bool {
		return countRunes(p, isASCIIDigit) >= valueobject.PasswordMinDigits
	}},
	{valueobject.ReasonMinUppercase, func(p string) bool {
		return countRunes(p, unicode.IsUpper) >= valueobject.PasswordMinUppercase
	}},
	{valueobject.ReasonMinLowercase, func(p string) bool {
		return countRunes(p, unicode.IsLower) >= valueobject.PasswordMinLowercase
	}},
	{valueobject.ReasonMinSpecialChars, func(p string) bool {
		return countRunes(p, isSpecialChar) >= valueobject.PasswordMinSpecialChars
	}},
}

// passwordValidator implements the adapter.PasswordValidator interface.
// It holds no state and is safe for concurrent use.
type passwordValidator struct{}

// NewPasswordValidator creates a new password validator instance.
func NewPasswordValidator() adapter.PasswordValidator {
	return passwordValidator{}
}

// Validate checks the password against each content rule in order, then
// checks that the confirmation matches exactly.
func (passwordValidator) Validate(password, confirmPassword string) valueobject.PasswordPolicyResult {
	for _, rule := range passwordRules {
		if !rule.check(password) {
			return valueobject.PasswordRejected(rule.reason)
		}
	}

	if password != confirmPassword {
		return valueobject.PasswordRejected(valueobject.ReasonNoMatch)
	}

	return valueobject.PasswordAccepted()
}

func countRunes(s string, match func(rune) bool) int {
	n := 0
	for _, r := range s {
		if match(r) {
			n++
		}
	}
	return n
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpecialChar(r rune) bool {
	return strings.ContainsRune(valueobject.PasswordSpecialChars, r)
}
