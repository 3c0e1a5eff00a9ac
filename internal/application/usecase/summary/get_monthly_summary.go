// Package summary contains monthly, weekly and calendar summary use cases.
package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// GetMonthlySummaryInput represents the input for a monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthRange
}

// GetMonthlySummaryUseCase totals a user's month.
type GetMonthlySummaryUseCase struct {
	entryRepo    adapter.EntryRepository
	spendingRepo adapter.DisposableSpendingRepository
	budgetRepo   adapter.DisposableBudgetRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	entryRepo adapter.EntryRepository,
	spendingRepo adapter.DisposableSpendingRepository,
	budgetRepo adapter.DisposableBudgetRepository,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		entryRepo:    entryRepo,
		spendingRepo: spendingRepo,
		budgetRepo:   budgetRepo,
	}
}

// Execute computes the summary. A month without a budget reports a budget of 0.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*entity.MonthlySummary, error) {
	start, end := input.Month.Start, input.Month.End
	summary := &entity.MonthlySummary{MonthStart: start}

	var err error
	if summary.Income, err = uc.entryRepo.SumInRange(ctx, entity.EntryKindIncome, input.UserID, start, end, nil); err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	byType := []struct {
		category entity.ExpenditureType
		target   *int64
	}{
		{entity.ExpenditureTypeBill, &summary.Bills},
		{entity.ExpenditureTypeSaving, &summary.Saving},
		{entity.ExpenditureTypeInvestment, &summary.Investment},
	}
	for _, t := range byType {
		category := t.category
		total, err := uc.entryRepo.SumInRange(ctx, entity.EntryKindExpenditure, input.UserID, start, end, &category)
		if err != nil {
			return nil, fmt.Errorf("failed to sum %s expenditure: %w", category, err)
		}
		*t.target = total
	}

	if summary.DisposableSpending, err = uc.spendingRepo.SumInRange(ctx, input.UserID, start, end); err != nil {
		return nil, fmt.Errorf("failed to sum disposable spending: %w", err)
	}

	budget, err := uc.budgetRepo.FindForMonth(ctx, input.UserID, start, end)
	switch {
	case err == nil:
		summary.Budget = budget.Amount
	case !errors.Is(err, domainerror.ErrBudgetNotFound):
		return nil, fmt.Errorf("failed to find disposable budget: %w", err)
	}

	summary.Total = summary.Income - (summary.Bills + summary.Saving + summary.Investment + summary.DisposableSpending)
	summary.RemainingDisposable = summary.Budget - summary.DisposableSpending
	return summary, nil
}
