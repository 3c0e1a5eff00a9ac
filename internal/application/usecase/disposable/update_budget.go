// Package disposable contains disposable budget and spending use cases.
package disposable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	domainerror "github.com/sft-api/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for changing a budget amount.
type UpdateBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
	Amount   int64
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *BudgetOutput
}

// UpdateBudgetUseCase handles budget updates. Budgets are never created or
// deleted directly.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.DisposableBudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.DisposableBudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewDisposableError(
				domainerror.ErrCodeBudgetNotFound,
				"disposable budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find disposable budget: %w", err)
	}
	if budget.UserID != input.UserID {
		return nil, notAuthorized("budget")
	}

	budget.Amount = input.Amount
	budget.UpdatedAt = time.Now().UTC()
	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update disposable budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: toBudgetOutput(budget),
	}, nil
}
