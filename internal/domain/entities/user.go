package entities

import (
	"strings"
	"time"
)

// Role is one of the two flat portal roles.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

// UserProfile is the portal-side record of an account. Role is fixed at
// signup.
type UserProfile struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is what the identity service knows about an account.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// Session is the authenticated caller. It is created at sign-in and passed
// explicitly to every operation that needs to know who is acting.
type Session struct {
	UserID      string
	Role        Role
	Email       string
	DisplayName string
	Token       string
	ExpiresAt   time.Time
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

func (s Session) IsZero() bool { return s.UserID == "" }
