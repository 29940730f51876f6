package entity

// Credentials is a username/plaintext password pair submitted on login.
// It only lives for the duration of a single request and is never persisted or logged.
type Credentials struct {
	Username string
	Password string
}

// String keeps the password out of logs and fmt output.
func (c Credentials) String() string {
	return "Credentials{Username: " + c.Username + "}"
}
