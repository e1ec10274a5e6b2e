package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate holds the self-service fields. Role and email are not
// editable here.
type ProfileUpdate struct {
	Name     string
	Phone    string
	Location string
}

type IUserUseCase interface {
	GetProfile(ctx context.Context, session entities.Session) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, session entities.Session, upd ProfileUpdate) (entities.UserProfile, error)
	ListUsers(ctx context.Context) ([]entities.UserProfile, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) GetProfile(ctx context.Context, session entities.Session) (entities.UserProfile, error) {
	if session.IsZero() {
		return entities.UserProfile{}, ErrInvalidSession
	}
	p, err := u.repo.GetByID(ctx, session.UserID)
	if err != nil {
		return entities.UserProfile{}, storeErr("get user profile", err)
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return p, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, session entities.Session, upd ProfileUpdate) (entities.UserProfile, error) {
	if session.IsZero() {
		return entities.UserProfile{}, ErrInvalidSession
	}
	p, err := u.repo.UpdateContact(ctx, session.UserID,
		strings.TrimSpace(upd.Name), strings.TrimSpace(upd.Phone), strings.TrimSpace(upd.Location))
	if err != nil {
		return entities.UserProfile{}, storeErr("update user profile", err)
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return p, nil
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]entities.UserProfile, error) {
	users, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}
