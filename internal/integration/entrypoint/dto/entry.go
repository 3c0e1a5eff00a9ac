// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"github.com/sft-api/backend/internal/application/usecase/entry"
)

// CreateEntryRequest represents the request body for creating an income or expenditure.
type CreateEntryRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   *int64  `json:"amount" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Repeated string  `json:"repeated"`
	Type     *string `json:"type,omitempty"`
}

// UpdateEntryRequest represents the request body for a partial entry update.
type UpdateEntryRequest struct {
	Title    *string `json:"title,omitempty"`
	Amount   *int64  `json:"amount,omitempty"`
	Date     *string `json:"date,omitempty"`
	Repeated *string `json:"repeated,omitempty"`
	Type     *string `json:"type,omitempty"`
}

// EntryResponse represents a single income or expenditure in API responses.
type EntryResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Amount          int64   `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
	Date            string  `json:"date"`
	Repeated        string  `json:"repeated"`
	RepeatGroupID   *string `json:"repeat_group_id"`
	Type            *string `json:"type,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// CreateEntryResponse represents the response of a create call.
type CreateEntryResponse struct {
	EntryResponse
	Generated int64 `json:"generated"`
}

// EntryListResponse represents a month of entries.
type EntryListResponse struct {
	Month          string          `json:"month"`
	Entries        []EntryResponse `json:"entries"`
	Total          int64           `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
}

// ToEntryResponse converts an entry output to its response DTO.
func ToEntryResponse(e *entry.EntryOutput) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID.String(),
		Title:           e.Title,
		Amount:          e.Amount,
		FormattedAmount: FormatAmount(e.Amount),
		Date:            formatTime(e.Date),
		Repeated:        string(e.Repeated),
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
	}
	if e.RepeatGroupID != nil {
		id := e.RepeatGroupID.String()
		resp.RepeatGroupID = &id
	}
	if e.Type != nil {
		t := string(*e.Type)
		resp.Type = &t
	}
	return resp
}

// ToEntryListResponse converts a list output to its response DTO.
func ToEntryListResponse(month string, out *entry.ListEntriesOutput) EntryListResponse {
	resp := EntryListResponse{
		Month:          month,
		Entries:        make([]EntryResponse, 0, len(out.Entries)),
		Total:          out.Total,
		FormattedTotal: FormatAmount(out.Total),
	}
	for _, e := range out.Entries {
		resp.Entries = append(resp.Entries, ToEntryResponse(e))
	}
	return resp
}
