// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CurrencyCode is a three-letter ISO 4217 code.
type CurrencyCode string

// Supported currencies.
const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyHKD CurrencyCode = "HKD"
	CurrencyINR CurrencyCode = "INR"
)

// DefaultCurrency is assigned to preferences created on first access.
const DefaultCurrency = CurrencyGBP

// SupportedCurrencies lists every accepted code.
var SupportedCurrencies = []CurrencyCode{
	CurrencyUSD, CurrencyEUR, CurrencyJPY, CurrencyGBP, CurrencyAUD,
	CurrencyCAD, CurrencyCHF, CurrencyCNY, CurrencyHKD, CurrencyINR,
}

// IsValid reports whether c is a supported code.
func (c CurrencyCode) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// CurrencyPreference is the currency a user reads amounts in. Each user has
// exactly one, created on first access.
type CurrencyPreference struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      CurrencyCode
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCurrencyPreference creates a preference set to DefaultCurrency.
func NewCurrencyPreference(userID uuid.UUID) *CurrencyPreference {
	now := time.Now().UTC()
	return &CurrencyPreference{
		ID:        uuid.New(),
		UserID:    userID,
		Code:      DefaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
