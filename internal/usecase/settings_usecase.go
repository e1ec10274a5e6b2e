package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid settings")

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, storeErr("get settings", err)
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	s.ContactEmail = strings.TrimSpace(s.ContactEmail)
	s.ContactPhone = strings.TrimSpace(s.ContactPhone)
	s.Address = strings.TrimSpace(s.Address)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))

	if s.CompanyName == "" {
		return entities.Settings{}, ErrInvalidSettings
	}
	if s.ContactEmail != "" {
		if _, err := mail.ParseAddress(s.ContactEmail); err != nil {
			return entities.Settings{}, ErrInvalidSettings
		}
	}
	if s.Currency == "" {
		s.Currency = entities.DefaultSettings().Currency
	}
	s.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Put(ctx, s)
	if err != nil {
		return entities.Settings{}, storeErr("put settings", err)
	}
	return saved, nil
}
