// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"github.com/sft-api/backend/internal/application/usecase/currency"
)

// UpdateCurrencyRequest represents the request body for a partial currency update.
type UpdateCurrencyRequest struct {
	Currency *string `json:"currency,omitempty"`
}

// CurrencyResponse represents a currency preference in API responses.
type CurrencyResponse struct {
	ID        string `json:"id"`
	Currency  string `json:"currency"`
	UpdatedAt string `json:"updated_at"`
}

// ToCurrencyResponse converts a currency output to its response DTO.
func ToCurrencyResponse(c *currency.Output) CurrencyResponse {
	return CurrencyResponse{
		ID:        c.ID.String(),
		Currency:  string(c.Code),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}
