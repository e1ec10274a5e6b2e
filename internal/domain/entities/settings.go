package entities

import "time"

// Settings is the single company-wide settings document.
type Settings struct {
	CompanyName      string    `json:"company_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Address          string    `json:"address"`
	Currency         string    `json:"currency"`
	NotifyOnNewQuote bool      `json:"notify_on_new_quote"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultSettings is returned until an admin saves the settings once.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:      "Fenceworks",
		Currency:         "USD",
		NotifyOnNewQuote: true,
	}
}
