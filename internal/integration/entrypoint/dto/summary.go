// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"github.com/sft-api/backend/internal/domain/entity"
)

// MonthlySummaryResponse represents the monthly totals.
type MonthlySummaryResponse struct {
	Month               string `json:"month"`
	Income              int64  `json:"income"`
	Bills               int64  `json:"bills"`
	Saving              int64  `json:"saving"`
	Investment          int64  `json:"investment"`
	DisposableSpending  int64  `json:"disposable_spending"`
	Total               int64  `json:"total"`
	Budget              int64  `json:"budget"`
	RemainingDisposable int64  `json:"remaining_disposable"`
	FormattedTotal      string `json:"formatted_total"`
	FormattedRemaining  string `json:"formatted_remaining_disposable"`
	Currency            string `json:"currency"`
}

// WeeklySummaryResponse represents one week of a month.
type WeeklySummaryResponse struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Income    int64  `json:"weekly_income"`
	Cost      int64  `json:"weekly_cost"`
	Summary   int64  `json:"summary"`
}

// WeeklySummaryListResponse wraps the weeks of a month.
type WeeklySummaryListResponse struct {
	Month    string                  `json:"month"`
	Currency string                  `json:"currency"`
	Weeks    []WeeklySummaryResponse `json:"weeks"`
}

// DaySummaryResponse represents one calendar day.
type DaySummaryResponse struct {
	Date        string `json:"date"`
	Income      int64  `json:"income"`
	Expenditure int64  `json:"expenditure"`
}

// ToMonthlySummaryResponse converts a monthly summary to its response DTO.
// Amounts are reported in the user's preferred currency.
func ToMonthlySummaryResponse(month string, currency entity.CurrencyCode, s *entity.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:               month,
		Income:              s.Income,
		Bills:               s.Bills,
		Saving:              s.Saving,
		Investment:          s.Investment,
		DisposableSpending:  s.DisposableSpending,
		Total:               s.Total,
		Budget:              s.Budget,
		RemainingDisposable: s.RemainingDisposable,
		FormattedTotal:      FormatAmount(s.Total),
		FormattedRemaining:  FormatAmount(s.RemainingDisposable),
		Currency:            string(currency),
	}
}

// ToWeeklySummaryListResponse converts weekly summaries to their response DTO.
func ToWeeklySummaryListResponse(month string, currency entity.CurrencyCode, weeks []entity.WeeklySummary) WeeklySummaryListResponse {
	resp := WeeklySummaryListResponse{
		Month:    month,
		Currency: string(currency),
		Weeks:    make([]WeeklySummaryResponse, 0, len(weeks)),
	}
	for _, w := range weeks {
		resp.Weeks = append(resp.Weeks, WeeklySummaryResponse{
			WeekStart: formatDay(w.WeekStart),
			WeekEnd:   formatDay(w.WeekEnd),
			Income:    w.Income,
			Cost:      w.Cost,
			Summary:   w.Net,
		})
	}
	return resp
}

// ToCalendarResponse converts day summaries to their response DTO.
func ToCalendarResponse(days []entity.DaySummary) []DaySummaryResponse {
	resp := make([]DaySummaryResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, DaySummaryResponse{
			Date:        formatDay(d.Date),
			Income:      d.Income,
			Expenditure: d.Expenditure,
		})
	}
	return resp
}
