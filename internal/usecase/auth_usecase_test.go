package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fenceworks/internal/domain/entities"
	mock_interfaces "fenceworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type authMocks struct {
	identity *mock_interfaces.MockIIdentityProvider
	users    *mock_interfaces.MockIUserRepository
	tokens   *mock_interfaces.MockITokenIssuer
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		identity: mock_interfaces.NewMockIIdentityProvider(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		tokens:   mock_interfaces.NewMockITokenIssuer(ctrl),
	}
	return NewAuthUseCase(m.identity, m.users, m.tokens), m
}

func TestAuthUseCase_SignUp(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	t.Run("invalid role", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		_, err := uc.SignUp(context.Background(), SignUpCommand{Email: "a@b.co", Password: "secret1", Role: "owner"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("identity error passes through", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().CreateAccount(gomock.Any(), "a@b.co", "123", "Ann").Return(entities.Identity{}, NewAuthError(AuthWeakPassword, nil))

		_, err := uc.SignUp(context.Background(), SignUpCommand{Email: "a@b.co", Password: "123", Name: " Ann "})
		var ae *AuthError
		if !errors.As(err, &ae) || ae.Message() != "Password should be at least 6 characters long" {
			t.Fatalf("expected weak-password AuthError, got %v", err)
		}
	})

	t.Run("default role is customer", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().CreateAccount(gomock.Any(), "a@b.co", "secret1", "Ann").
			Return(entities.Identity{UserID: "u-1", Email: "a@b.co", DisplayName: "Ann"}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.Role != entities.RoleCustomer || p.ID != "u-1" || p.Phone != "555" {
					t.Fatalf("unexpected profile: %+v", p)
				}
				return p, nil
			},
		)
		m.tokens.EXPECT().Issue(gomock.Any()).Return("tok", exp, nil)

		s, err := uc.SignUp(context.Background(), SignUpCommand{Email: "a@b.co", Password: "secret1", Name: "Ann", Phone: " 555 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UserID != "u-1" || s.Token != "tok" || !s.ExpiresAt.Equal(exp) || s.IsAdmin() {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("admin role refused on public signup", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		for _, role := range []string{"Admin", "ADMIN", " admin "} {
			_, err := uc.SignUp(context.Background(), SignUpCommand{Email: "boss@b.co", Password: "secret1", Role: role})
			if !errors.Is(err, ErrInvalidRole) {
				t.Fatalf("role %q: expected ErrInvalidRole, got %v", role, err)
			}
		}
	})

	t.Run("explicit customer role accepted", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Identity{UserID: "u-4", Email: "d@b.co"}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)
		m.tokens.EXPECT().Issue(gomock.Any()).Return("tok", exp, nil)

		s, err := uc.SignUp(context.Background(), SignUpCommand{Email: "d@b.co", Password: "secret1", Role: "customer"})
		if err != nil || s.Role != entities.RoleCustomer {
			t.Fatalf("got %+v, %v", s, err)
		}
	})
}

func TestAuthUseCase_CreateUser(t *testing.T) {
	t.Run("admin role granted", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().CreateAccount(gomock.Any(), "boss@b.co", "secret1", "Boss").
			Return(entities.Identity{UserID: "u-2", Email: "boss@b.co", DisplayName: "Boss"}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)

		p, err := uc.CreateUser(context.Background(), SignUpCommand{Email: "boss@b.co", Password: "secret1", Name: "Boss", Role: "ADMIN"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "u-2" || p.Role != entities.RoleAdmin {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		_, err := uc.CreateUser(context.Background(), SignUpCommand{Email: "a@b.co", Password: "secret1", Role: "owner"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("default role is customer", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Identity{UserID: "u-5"}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)

		p, err := uc.CreateUser(context.Background(), SignUpCommand{Email: "e@b.co", Password: "secret1"})
		if err != nil || p.Role != entities.RoleCustomer {
			t.Fatalf("got %+v, %v", p, err)
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	t.Run("wrong password", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().Authenticate(gomock.Any(), "a@b.co", "nope").Return(entities.Identity{}, NewAuthError(AuthWrongPassword, nil))

		_, err := uc.SignIn(context.Background(), "a@b.co", "nope")
		var ae *AuthError
		if !errors.As(err, &ae) || ae.Message() != "Invalid email or password" {
			t.Fatalf("expected wrong-password AuthError, got %v", err)
		}
	})

	t.Run("role comes from profile", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().Authenticate(gomock.Any(), "boss@b.co", "secret1").Return(entities.Identity{UserID: "u-2"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "u-2").Return(entities.UserProfile{ID: "u-2", Role: entities.RoleAdmin, Name: "Boss"}, nil)
		m.tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(s entities.Session) (string, time.Time, error) {
			if s.Role != entities.RoleAdmin || s.DisplayName != "Boss" {
				t.Fatalf("unexpected session: %+v", s)
			}
			return "tok", exp, nil
		})

		if _, err := uc.SignIn(context.Background(), "boss@b.co", "secret1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing profile recreated as customer", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.identity.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Identity{UserID: "u-3", Email: "c@b.co"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "u-3").Return(entities.UserProfile{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)
		m.tokens.EXPECT().Issue(gomock.Any()).Return("tok", exp, nil)

		s, err := uc.SignIn(context.Background(), "c@b.co", "secret1")
		if err != nil || s.Role != entities.RoleCustomer {
			t.Fatalf("got %+v, %v", s, err)
		}
	})
}

func TestAuthUseCase_ParseSession(t *testing.T) {
	uc, m := newAuthUseCase(t)

	if _, err := uc.ParseSession("  "); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}

	m.tokens.EXPECT().Parse("bad").Return(entities.Session{}, errors.New("signature"))
	if _, err := uc.ParseSession("bad"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}

	m.tokens.EXPECT().Parse("good").Return(entities.Session{UserID: "u-1"}, nil)
	s, err := uc.ParseSession("good")
	if err != nil || s.UserID != "u-1" {
		t.Fatalf("got %+v, %v", s, err)
	}
}

func TestAuthMessage(t *testing.T) {
	cases := map[AuthErrorCode]string{
		AuthInvalidCredential: "Invalid email or password",
		AuthUserNotFound:      "Invalid email or password",
		AuthEmailAlreadyInUse: "An account with this email already exists",
		AuthWeakPassword:      "Password should be at least 6 characters long",
		AuthPasswordTooLong:   "Password must be at most 72 characters long",
		AuthInvalidEmail:      "Please enter a valid email address",
		AuthTooManyRequests:   "Too many failed attempts. Please try again later",
		AuthNetworkFailure:    "Network error. Please check your internet connection",
		AuthInvalidResetToken: "An error occurred. Please try again.",
		"something-else":      "An error occurred. Please try again.",
	}
	for code, want := range cases {
		if got := AuthMessage(code); got != want {
			t.Fatalf("code %s: got %q, want %q", code, got, want)
		}
	}
}
