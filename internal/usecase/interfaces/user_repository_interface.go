package interfaces

import (
	"context"
	"fenceworks/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for user profiles.
type IUserRepository interface {
	Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	ListAll(ctx context.Context) ([]entities.UserProfile, error)
	// UpdateContact never touches the role.
	UpdateContact(ctx context.Context, id, name, phone, location string) (entities.UserProfile, error)
}

// ISettingsRepository stores the single settings document. Get returns
// found=false when nothing was saved yet.
type ISettingsRepository interface {
	Get(ctx context.Context) (s entities.Settings, found bool, err error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

// ICredentialRepository is the identity service's private storage.
type ICredentialRepository interface {
	Create(ctx context.Context, c entities.Credential) (created bool, err error)
	GetByEmail(ctx context.Context, email string) (entities.Credential, error)
	Put(ctx context.Context, c entities.Credential) error
}
