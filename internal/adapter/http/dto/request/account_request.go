package request

import (
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase"
)

type SignUpRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Name     string `json:"name" form:"name"`
	Role     string `json:"role" form:"role"`
	Phone    string `json:"phone" form:"phone"`
	Location string `json:"location" form:"location"`
}

func (r SignUpRequest) ToCommand() usecase.SignUpCommand {
	return usecase.SignUpCommand{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
		Phone:    r.Phone,
		Location: r.Location,
	}
}

type SignInRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
}

type PasswordResetConfirmRequest struct {
	Email       string `json:"email" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

func (r ProfileRequest) ToUpdate() usecase.ProfileUpdate {
	return usecase.ProfileUpdate{Name: r.Name, Phone: r.Phone, Location: r.Location}
}

type SettingsRequest struct {
	CompanyName      string `json:"company_name" binding:"required"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	Address          string `json:"address"`
	Currency         string `json:"currency"`
	NotifyOnNewQuote bool   `json:"notify_on_new_quote"`
}

func (r SettingsRequest) ToEntity() entities.Settings {
	return entities.Settings{
		CompanyName:      r.CompanyName,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		Address:          r.Address,
		Currency:         r.Currency,
		NotifyOnNewQuote: r.NotifyOnNewQuote,
	}
}
