// Package disposable contains disposable budget and spending use cases.
package disposable

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

// GetBudgetInput represents the input for fetching a month's budget.
type GetBudgetInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthRange
}

// GetBudgetOutput represents the output of fetching a budget.
type GetBudgetOutput struct {
	Budget  *BudgetOutput
	Created bool
}

// GetBudgetUseCase returns the budget of a month, creating an empty one on first access.
type GetBudgetUseCase struct {
	budgetRepo adapter.DisposableBudgetRepository
	transactor adapter.Transactor
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.DisposableBudgetRepository, transactor adapter.Transactor) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		transactor: transactor,
	}
}

// Execute performs the lookup.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	output := &GetBudgetOutput{}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		budget, err := uc.budgetRepo.FindForMonth(ctx, input.UserID, input.Month.Start, input.Month.End)
		if err == nil {
			output.Budget = toBudgetOutput(budget)
			return nil
		}
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			return fmt.Errorf("failed to find disposable budget: %w", err)
		}

		budget = entity.NewDisposableBudget(input.UserID, input.Month.Start)
		if err := uc.budgetRepo.Create(ctx, budget); err != nil {
			return fmt.Errorf("failed to create disposable budget: %w", err)
		}
		output.Budget = toBudgetOutput(budget)
		output.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
