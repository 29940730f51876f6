package entity

// RejectionReason identifies why the authentication gate refused a request.
type RejectionReason string

const (
	// RejectionBadCredentials covers both unknown usernames and wrong passwords.
	RejectionBadCredentials RejectionReason = "BAD_CREDENTIALS"
	// RejectionMissingToken means no bearer token was presented at all.
	RejectionMissingToken RejectionReason = "MISSING_TOKEN"
	// RejectionInvalidToken covers forged, malformed and expired tokens alike.
	RejectionInvalidToken RejectionReason = "INVALID_TOKEN"
)

// AuthenticationOutcome is either Authenticated(subject) or Rejected(reason).
type AuthenticationOutcome struct {
	subject string
	reason  RejectionReason
}

// Authenticated returns a successful outcome for the given principal.
func Authenticated(subject string) AuthenticationOutcome {
	return AuthenticationOutcome{subject: subject}
}

// Rejected returns a failed outcome with the given reason.
func Rejected(reason RejectionReason) AuthenticationOutcome {
	return AuthenticationOutcome{reason: reason}
}

// IsAuthenticated reports whether the outcome carries a principal.
func (o AuthenticationOutcome) IsAuthenticated() bool {
	return o.reason == ""
}

// Subject returns the authenticated principal, or "" for a rejection.
func (o AuthenticationOutcome) Subject() string {
	return o.subject
}

// Reason returns the rejection reason, or "" for an authenticated outcome.
func (o AuthenticationOutcome) Reason() RejectionReason {
	return o.reason
}
