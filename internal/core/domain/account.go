package domain

import "time"

// CustomerToken is the OAuth token of a logged-in customer.
type CustomerToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the access token has an expiry in the past.
func (t *CustomerToken) IsExpired(now time.Time) bool {
	return t != nil && !t.Expiry.IsZero() && now.After(t.Expiry)
}

// Session is the persisted shopper session.
type Session struct {
	CartID    string
	Token     *CustomerToken
	UpdatedAt time.Time
}
