// Package summary contains monthly, weekly and calendar summary use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// GetWeeklySummaryInput represents the input for a weekly summary.
type GetWeeklySummaryInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthRange
}

// GetWeeklySummaryUseCase totals each week of a month.
type GetWeeklySummaryUseCase struct {
	entryRepo    adapter.EntryRepository
	spendingRepo adapter.DisposableSpendingRepository
}

// NewGetWeeklySummaryUseCase creates a new GetWeeklySummaryUseCase instance.
func NewGetWeeklySummaryUseCase(
	entryRepo adapter.EntryRepository,
	spendingRepo adapter.DisposableSpendingRepository,
) *GetWeeklySummaryUseCase {
	return &GetWeeklySummaryUseCase{
		entryRepo:    entryRepo,
		spendingRepo: spendingRepo,
	}
}

// Execute returns one summary per week. Cost covers expenditure and disposable spending.
func (uc *GetWeeklySummaryUseCase) Execute(ctx context.Context, input GetWeeklySummaryInput) ([]entity.WeeklySummary, error) {
	weeks := WeeksInMonth(input.Month)
	summaries := make([]entity.WeeklySummary, 0, len(weeks))

	for _, w := range weeks {
		income, err := uc.entryRepo.SumInRange(ctx, entity.EntryKindIncome, input.UserID, w.Start, w.End, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to sum weekly income: %w", err)
		}
		expenditure, err := uc.entryRepo.SumInRange(ctx, entity.EntryKindExpenditure, input.UserID, w.Start, w.End, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to sum weekly expenditure: %w", err)
		}
		disposable, err := uc.spendingRepo.SumInRange(ctx, input.UserID, w.Start, w.End)
		if err != nil {
			return nil, fmt.Errorf("failed to sum weekly disposable spending: %w", err)
		}

		cost := expenditure + disposable
		summaries = append(summaries, entity.WeeklySummary{
			WeekStart: w.Start,
			WeekEnd:   w.LastDay(),
			Income:    income,
			Cost:      cost,
			Net:       income - cost,
		})
	}
	return summaries, nil
}
