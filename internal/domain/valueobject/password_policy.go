// Package valueobject contains domain value objects for the eCommerce system.
package valueobject

// Password complexity thresholds. These are fixed for compatibility with
// existing accounts and clients that key off the failure reasons.
const (
	PasswordMinLength       = 10
	PasswordMinDigits       = 2
	PasswordMinUppercase    = 2
	PasswordMinLowercase    = 4
	PasswordMinSpecialChars = 1

	// PasswordSpecialChars is the set of characters counted as special.
	PasswordSpecialChars = "~!@#$%^&*_-+=`|\\(){}[]:;\"'<>,.?/"
)

// FailureReason identifies the first password rule that was violated.
type FailureReason string

// Failure reasons, listed in rule evaluation order.
const (
	ReasonMinLength       FailureReason = "MIN_LENGTH"
	ReasonMinDigits       FailureReason = "MIN_DIGITS"
	ReasonMinUppercase    FailureReason = "MIN_UPPERCASE"
	ReasonMinLowercase    FailureReason = "MIN_LOWERCASE"
	ReasonMinSpecialChars FailureReason = "MIN_SPECIAL_CHARS"
	ReasonNoMatch         FailureReason = "NO_MATCH"
)

var reasonMessages = map[FailureReason]string{
	ReasonMinLength:       "Password must be at least 10 characters long.",
	ReasonMinDigits:       "Password must contain at least 2 digits.",
	ReasonMinUppercase:    "Password must contain at least 2 uppercase letters.",
	ReasonMinLowercase:    "Password must contain at least 4 lowercase letters.",
	ReasonMinSpecialChars: "Password must contain at least 1 special character.",
	ReasonNoMatch:         "Password and confirmation password do not match.",
}

// Message returns the stable human-readable message for the reason.
func (r FailureReason) Message() string {
	return reasonMessages[r]
}

// PasswordPolicyResult is the outcome of a single password validation.
// When Passed is false, Reason holds exactly one failure reason.
type PasswordPolicyResult struct {
	Passed bool
	Reason FailureReason
}

// PasswordAccepted returns a passing result.
func PasswordAccepted() PasswordPolicyResult {
	return PasswordPolicyResult{Passed: true}
}

// PasswordRejected returns a failing result for the given reason.
func PasswordRejected(reason FailureReason) PasswordPolicyResult {
	return PasswordPolicyResult{Reason: reason}
}
