package entities

import "time"

// Credential is the identity service's private record of an account,
// keyed by lowercased email.
type Credential struct {
	Email          string
	UserID         string
	DisplayName    string
	PasswordHash   string
	FailedAttempts int
	LockedUntil    time.Time
	ResetToken     string
	ResetExpiresAt time.Time
	CreatedAt      time.Time
}
