// Package identity is the portal's own identity service: accounts and
// password checks live in the credentials table, sessions are signed JWTs.
package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
	"fenceworks/internal/usecase/interfaces"

	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
	MaxFailedSignIns  = 5
	LockoutPeriod     = 15 * time.Minute
	ResetTokenTTL     = time.Hour
)

// ResetSender delivers a password reset token to its owner.
type ResetSender func(ctx context.Context, email, token string) error

type CredentialProvider struct {
	repo       interfaces.ICredentialRepository
	sendReset  ResetSender
	now        func() time.Time
	bcryptCost int
}

var _ interfaces.IIdentityProvider = (*CredentialProvider)(nil)

type Option func(*CredentialProvider)

func WithResetSender(s ResetSender) Option {
	return func(p *CredentialProvider) { p.sendReset = s }
}

func WithClock(now func() time.Time) Option {
	return func(p *CredentialProvider) { p.now = now }
}

// WithBcryptCost is meant for tests; production keeps bcrypt.DefaultCost.
func WithBcryptCost(cost int) Option {
	return func(p *CredentialProvider) { p.bcryptCost = cost }
}

func NewCredentialProvider(repo interfaces.ICredentialRepository, opts ...Option) *CredentialProvider {
	p := &CredentialProvider{
		repo:       repo,
		sendReset:  logResetSender,
		now:        func() time.Time { return time.Now().UTC() },
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *CredentialProvider) CreateAccount(ctx context.Context, email, password, displayName string) (entities.Identity, error) {
	email, ok := normalizeEmail(email)
	if !ok {
		return entities.Identity{}, usecase.NewAuthError(usecase.AuthInvalidEmail, nil)
	}
	hash, err := p.hashPassword(password)
	if err != nil {
		return entities.Identity{}, err
	}

	c := entities.Credential{
		Email:        email,
		UserID:       uuid.NewString(),
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    p.now(),
	}
	created, err := p.repo.Create(ctx, c)
	if err != nil {
		return entities.Identity{}, storeAuthError(err)
	}
	if !created {
		return entities.Identity{}, usecase.NewAuthError(usecase.AuthEmailAlreadyInUse, nil)
	}
	log.Printf("[auth][identity] account created user_id=%s", c.UserID)
	return identityOf(c), nil
}

// Authenticate checks a password. MaxFailedSignIns consecutive failures lock
// the account for LockoutPeriod; a success clears the counter.
func (p *CredentialProvider) Authenticate(ctx context.Context, email, password string) (entities.Identity, error) {
	email, ok := normalizeEmail(email)
	if !ok {
		return entities.Identity{}, usecase.NewAuthError(usecase.AuthInvalidEmail, nil)
	}
	c, err := p.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Identity{}, storeAuthError(err)
	}
	if c.UserID == "" {
		return entities.Identity{}, usecase.NewAuthError(usecase.AuthInvalidCredential, nil)
	}

	now := p.now()
	if now.Before(c.LockedUntil) {
		return entities.Identity{}, usecase.NewAuthError(usecase.AuthTooManyRequests, nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		c.FailedAttempts++
		code := usecase.AuthWrongPassword
		if c.FailedAttempts >= MaxFailedSignIns {
			c.FailedAttempts = 0
			c.LockedUntil = now.Add(LockoutPeriod)
			code = usecase.AuthTooManyRequests
			log.Printf("[auth][identity] account locked user_id=%s until=%s", c.UserID, c.LockedUntil.Format(time.RFC3339))
		}
		if err := p.repo.Put(ctx, c); err != nil {
			return entities.Identity{}, storeAuthError(err)
		}
		return entities.Identity{}, usecase.NewAuthError(code, nil)
	}

	if c.FailedAttempts != 0 || !c.LockedUntil.IsZero() {
		c.FailedAttempts = 0
		c.LockedUntil = time.Time{}
		if err := p.repo.Put(ctx, c); err != nil {
			return entities.Identity{}, storeAuthError(err)
		}
	}
	return identityOf(c), nil
}

func (p *CredentialProvider) SendPasswordReset(ctx context.Context, email string) error {
	email, ok := normalizeEmail(email)
	if !ok {
		return usecase.NewAuthError(usecase.AuthInvalidEmail, nil)
	}
	c, err := p.repo.GetByEmail(ctx, email)
	if err != nil {
		return storeAuthError(err)
	}
	if c.UserID == "" {
		return usecase.NewAuthError(usecase.AuthUserNotFound, nil)
	}

	c.ResetToken = uuid.NewString()
	c.ResetExpiresAt = p.now().Add(ResetTokenTTL)
	if err := p.repo.Put(ctx, c); err != nil {
		return storeAuthError(err)
	}
	if err := p.sendReset(ctx, c.Email, c.ResetToken); err != nil {
		return usecase.NewAuthError(usecase.AuthInternalError, err)
	}
	return nil
}

func (p *CredentialProvider) ConfirmPasswordReset(ctx context.Context, email, token, newPassword string) error {
	email, ok := normalizeEmail(email)
	if !ok {
		return usecase.NewAuthError(usecase.AuthInvalidEmail, nil)
	}
	c, err := p.repo.GetByEmail(ctx, email)
	if err != nil {
		return storeAuthError(err)
	}
	if c.UserID == "" || c.ResetToken == "" || p.now().After(c.ResetExpiresAt) ||
		subtle.ConstantTimeCompare([]byte(c.ResetToken), []byte(strings.TrimSpace(token))) != 1 {
		return usecase.NewAuthError(usecase.AuthInvalidResetToken, nil)
	}
	hash, err := p.hashPassword(newPassword)
	if err != nil {
		return err
	}

	c.PasswordHash = hash
	c.ResetToken = ""
	c.ResetExpiresAt = time.Time{}
	c.FailedAttempts = 0
	c.LockedUntil = time.Time{}
	if err := p.repo.Put(ctx, c); err != nil {
		return storeAuthError(err)
	}
	log.Printf("[auth][identity] password reset user_id=%s", c.UserID)
	return nil
}

// hashPassword enforces the length bounds. bcrypt only reads the first 72
// bytes, so longer passwords are refused rather than silently truncated.
func (p *CredentialProvider) hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", usecase.NewAuthError(usecase.AuthWeakPassword, nil)
	}
	if len(password) > MaxPasswordBytes {
		return "", usecase.NewAuthError(usecase.AuthPasswordTooLong, nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", usecase.NewAuthError(usecase.AuthPasswordTooLong, err)
	}
	if err != nil {
		return "", usecase.NewAuthError(usecase.AuthInternalError, err)
	}
	return string(hash), nil
}

func identityOf(c entities.Credential) entities.Identity {
	return entities.Identity{UserID: c.UserID, Email: c.Email, DisplayName: c.DisplayName}
}

// normalizeEmail accepts a bare address only ("a@b.co", not "Ann <a@b.co>").
func normalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", false
	}
	return email, true
}

// storeAuthError reports a request that never reached the credential store
// as a network failure.
func storeAuthError(err error) error {
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return usecase.NewAuthError(usecase.AuthNetworkFailure, err)
	}
	return usecase.NewAuthError(usecase.AuthInternalError, err)
}

// logResetSender is the default sender when no mail transport is wired. The
// token never reaches the log.
func logResetSender(_ context.Context, email, _ string) error {
	log.Printf("[auth][identity] password reset issued email=%s", email)
	return nil
}
