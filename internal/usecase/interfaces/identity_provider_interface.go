package interfaces

import (
	"context"
	"fenceworks/internal/domain/entities"
	"time"
)

// IIdentityProvider abstracts the identity service: account creation,
// credential checks and password reset. Failures are returned as
// *usecase.AuthError values carrying a code.
type IIdentityProvider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (entities.Identity, error)
	Authenticate(ctx context.Context, email, password string) (entities.Identity, error)
	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, token, newPassword string) error
}

// ITokenIssuer signs and verifies opaque session tokens.
type ITokenIssuer interface {
	Issue(s entities.Session) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.Session, error)
}
