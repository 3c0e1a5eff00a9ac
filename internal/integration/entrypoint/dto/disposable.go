// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"github.com/sft-api/backend/internal/application/usecase/disposable"
)

// UpdateBudgetRequest represents the request body for changing a budget.
type UpdateBudgetRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// BudgetResponse represents a disposable budget in API responses.
type BudgetResponse struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
	Date            string `json:"date"`
	UpdatedAt       string `json:"updated_at"`
}

// CreateSpendingRequest represents the request body for recording a spending.
type CreateSpendingRequest struct {
	Title  string `json:"title" binding:"required"`
	Amount *int64 `json:"amount" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// UpdateSpendingRequest represents the request body for a partial spending update.
type UpdateSpendingRequest struct {
	Title  *string `json:"title,omitempty"`
	Amount *int64  `json:"amount,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// SpendingResponse represents a disposable spending in API responses.
type SpendingResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
	Date            string `json:"date"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// SpendingListResponse represents a month of disposable spending.
type SpendingListResponse struct {
	Month          string             `json:"month"`
	Spending       []SpendingResponse `json:"spending"`
	Total          int64              `json:"total"`
	FormattedTotal string             `json:"formatted_total"`
}

// ToBudgetResponse converts a budget output to its response DTO.
func ToBudgetResponse(b *disposable.BudgetOutput) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID.String(),
		Amount:          b.Amount,
		FormattedAmount: FormatAmount(b.Amount),
		Date:            formatDay(b.Date),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

// ToSpendingResponse converts a spending output to its response DTO.
func ToSpendingResponse(s *disposable.SpendingOutput) SpendingResponse {
	return SpendingResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Amount:          s.Amount,
		FormattedAmount: FormatAmount(s.Amount),
		Date:            formatTime(s.Date),
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

// ToSpendingListResponse converts a list output to its response DTO.
func ToSpendingListResponse(month string, out *disposable.ListSpendingOutput) SpendingListResponse {
	resp := SpendingListResponse{
		Month:          month,
		Spending:       make([]SpendingResponse, 0, len(out.Spending)),
		Total:          out.Total,
		FormattedTotal: FormatAmount(out.Total),
	}
	for _, s := range out.Spending {
		resp.Spending = append(resp.Spending, ToSpendingResponse(s))
	}
	return resp
}
