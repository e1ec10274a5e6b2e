package response

import (
	"time"

	"fenceworks/internal/domain/entities"
)

type SessionResponse struct {
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Redirect    string    `json:"redirect"`
}

// FromSession includes the landing page for the session's role.
func FromSession(s entities.Session, redirect string) SessionResponse {
	return SessionResponse{
		UserID:      s.UserID,
		Role:        string(s.Role),
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Token:       s.Token,
		ExpiresAt:   s.ExpiresAt,
		Redirect:    redirect,
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.UserProfile) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Role:      string(u.Role),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(users []entities.UserProfile) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type SettingsResponse struct {
	CompanyName      string    `json:"company_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Address          string    `json:"address"`
	Currency         string    `json:"currency"`
	NotifyOnNewQuote bool      `json:"notify_on_new_quote"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:      s.CompanyName,
		ContactEmail:     s.ContactEmail,
		ContactPhone:     s.ContactPhone,
		Address:          s.Address,
		Currency:         s.Currency,
		NotifyOnNewQuote: s.NotifyOnNewQuote,
		UpdatedAt:        s.UpdatedAt,
	}
}
