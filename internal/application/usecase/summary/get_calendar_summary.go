// Package summary contains monthly, weekly and calendar summary use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// GetCalendarSummaryInput represents the input for a calendar summary.
type GetCalendarSummaryInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthRange
}

// GetCalendarSummaryUseCase totals each day of a month.
type GetCalendarSummaryUseCase struct {
	entryRepo    adapter.EntryRepository
	spendingRepo adapter.DisposableSpendingRepository
}

// NewGetCalendarSummaryUseCase creates a new GetCalendarSummaryUseCase instance.
func NewGetCalendarSummaryUseCase(
	entryRepo adapter.EntryRepository,
	spendingRepo adapter.DisposableSpendingRepository,
) *GetCalendarSummaryUseCase {
	return &GetCalendarSummaryUseCase{
		entryRepo:    entryRepo,
		spendingRepo: spendingRepo,
	}
}

// Execute returns one summary for every day of the month, including empty days.
// Disposable spending counts as expenditure.
func (uc *GetCalendarSummaryUseCase) Execute(ctx context.Context, input GetCalendarSummaryInput) ([]entity.DaySummary, error) {
	start, end := input.Month.Start, input.Month.End

	days := make([]entity.DaySummary, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, entity.DaySummary{Date: d})
	}
	index := func(t time.Time) int {
		return valueobject.DateOnly(t.UTC()).Day() - 1
	}

	incomes, err := uc.entryRepo.FindByUserInRange(ctx, entity.EntryKindIncome, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	for _, e := range incomes {
		days[index(e.Date)].Income += e.Amount
	}

	expenditures, err := uc.entryRepo.FindByUserInRange(ctx, entity.EntryKindExpenditure, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenditure: %w", err)
	}
	for _, e := range expenditures {
		days[index(e.Date)].Expenditure += e.Amount
	}

	spending, err := uc.spendingRepo.FindByUserInRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list disposable spending: %w", err)
	}
	for _, s := range spending {
		days[index(s.Date)].Expenditure += s.Amount
	}

	return days, nil
}
