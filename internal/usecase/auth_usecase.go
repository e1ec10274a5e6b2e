package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
)

var ErrInvalidRole = errors.New("invalid role")

// SignUpCommand carries the signup form. An empty Role means Customer.
// Public signup accepts no other role; CreateUser honours it.
type SignUpCommand struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
	Location string
}

// IAuthUseCase ties the identity service to portal profiles and sessions.
type IAuthUseCase interface {
	SignUp(ctx context.Context, cmd SignUpCommand) (entities.Session, error)
	CreateUser(ctx context.Context, cmd SignUpCommand) (entities.UserProfile, error)
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, token, newPassword string) error
	ParseSession(token string) (entities.Session, error)
}

type AuthUseCase struct {
	identity interfaces.IIdentityProvider
	users    interfaces.IUserRepository
	tokens   interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(identity interfaces.IIdentityProvider, users interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{identity: identity, users: users, tokens: tokens}
}

// SignUp is the public registration path. It only ever creates customers;
// any other requested role is refused before an account is made.
func (u *AuthUseCase) SignUp(ctx context.Context, cmd SignUpCommand) (entities.Session, error) {
	if strings.TrimSpace(cmd.Role) != "" {
		r, ok := entities.ParseRole(cmd.Role)
		if !ok || r != entities.RoleCustomer {
			log.Printf("[auth][usecase] signup refused role=%q", cmd.Role)
			return entities.Session{}, ErrInvalidRole
		}
	}
	profile, err := u.register(ctx, cmd, entities.RoleCustomer)
	if err != nil {
		return entities.Session{}, err
	}
	return u.issue(profile)
}

// CreateUser registers an account on behalf of an admin. Unlike SignUp it
// may grant any role and does not start a session for the new user.
func (u *AuthUseCase) CreateUser(ctx context.Context, cmd SignUpCommand) (entities.UserProfile, error) {
	role := entities.RoleCustomer
	if strings.TrimSpace(cmd.Role) != "" {
		r, ok := entities.ParseRole(cmd.Role)
		if !ok {
			return entities.UserProfile{}, ErrInvalidRole
		}
		role = r
	}
	return u.register(ctx, cmd, role)
}

func (u *AuthUseCase) register(ctx context.Context, cmd SignUpCommand, role entities.Role) (entities.UserProfile, error) {
	id, err := u.identity.CreateAccount(ctx, cmd.Email, cmd.Password, strings.TrimSpace(cmd.Name))
	if err != nil {
		return entities.UserProfile{}, err
	}

	now := time.Now().UTC()
	profile := entities.UserProfile{
		ID:        id.UserID,
		Role:      role,
		Name:      id.DisplayName,
		Email:     id.Email,
		Phone:     strings.TrimSpace(cmd.Phone),
		Location:  strings.TrimSpace(cmd.Location),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := u.users.Create(ctx, profile); err != nil {
		log.Printf("[auth][usecase] profile create failed user_id=%s err=%v", id.UserID, err)
		return entities.UserProfile{}, storeErr("create user profile", err)
	}
	log.Printf("[auth][usecase] registered user_id=%s role=%s", id.UserID, role)
	return profile, nil
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	id, err := u.identity.Authenticate(ctx, email, password)
	if err != nil {
		return entities.Session{}, err
	}

	profile, err := u.users.GetByID(ctx, id.UserID)
	if err != nil {
		return entities.Session{}, storeErr("get user profile", err)
	}
	if profile.ID == "" {
		// The account exists but its profile write never landed.
		log.Printf("[auth][usecase] missing profile, recreating user_id=%s", id.UserID)
		now := time.Now().UTC()
		profile = entities.UserProfile{
			ID:        id.UserID,
			Role:      entities.RoleCustomer,
			Name:      id.DisplayName,
			Email:     id.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := u.users.Create(ctx, profile); err != nil {
			return entities.Session{}, storeErr("create user profile", err)
		}
	}
	return u.issue(profile)
}

func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	return u.identity.SendPasswordReset(ctx, email)
}

func (u *AuthUseCase) ConfirmPasswordReset(ctx context.Context, email, token, newPassword string) error {
	return u.identity.ConfirmPasswordReset(ctx, email, token, newPassword)
}

func (u *AuthUseCase) ParseSession(token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s, err := u.tokens.Parse(token)
	if err != nil {
		return entities.Session{}, ErrInvalidSession
	}
	return s, nil
}

func (u *AuthUseCase) issue(p entities.UserProfile) (entities.Session, error) {
	s := entities.Session{
		UserID:      p.ID,
		Role:        p.Role,
		Email:       p.Email,
		DisplayName: p.Name,
	}
	token, exp, err := u.tokens.Issue(s)
	if err != nil {
		return entities.Session{}, err
	}
	s.Token = token
	s.ExpiresAt = exp
	return s, nil
}
