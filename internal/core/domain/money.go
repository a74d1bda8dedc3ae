package domain

import (
	"fmt"
	"strconv"
)

// Money is a decimal amount in a currency, as the Storefront API returns it.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Format renders the amount with its currency symbol, falling back to the
// ISO code suffix for unknown currencies.
func (m Money) Format() string {
	value, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return m.Amount
	}
	if sym, ok := currencySymbols[m.CurrencyCode]; ok {
		if m.CurrencyCode == "JPY" {
			return fmt.Sprintf("%s%.0f", sym, value)
		}
		return fmt.Sprintf("%s%.2f", sym, value)
	}
	return fmt.Sprintf("%.2f %s", value, m.CurrencyCode)
}

// IsZero returns true if the money carries no amount.
func (m Money) IsZero() bool {
	if m.Amount == "" {
		return true
	}
	value, err := strconv.ParseFloat(m.Amount, 64)
	return err == nil && value == 0
}

// Multiply returns the amount scaled by quantity in the same currency.
func (m Money) Multiply(quantity int) Money {
	value, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return m
	}
	return Money{
		Amount:       strconv.FormatFloat(value*float64(quantity), 'f', 2, 64),
		CurrencyCode: m.CurrencyCode,
	}
}

// Image is a platform-hosted image reference.
type Image struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}
