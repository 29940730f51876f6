package entity

import "time"

// AuditOutcome is the result recorded for an audited authentication event.
type AuditOutcome string

const (
	AuditOutcomeSuccess AuditOutcome = "success"
	AuditOutcomeFailure AuditOutcome = "failure"
)

// AuditEvent names the audited operation.
type AuditEvent string

const (
	AuditEventLogin AuditEvent = "login"
)

// AuditEntry is a single login audit record. It never carries a password.
type AuditEntry struct {
	Event      AuditEvent   `json:"event"`
	Username   string       `json:"username"`
	Outcome    AuditOutcome `json:"outcome"`
	Reason     string       `json:"reason,omitempty"`
	ClientIP   string       `json:"client_ip,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
