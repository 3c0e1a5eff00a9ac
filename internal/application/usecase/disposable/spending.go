// Package disposable contains disposable budget and spending use cases.
package disposable

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// CreateSpendingInput represents the input for recording a spending.
type CreateSpendingInput struct {
	UserID uuid.UUID
	Title  string
	Amount int64
	Date   time.Time
}

// UpdateSpendingInput represents the input for editing a spending. Nil fields are left unchanged.
type UpdateSpendingInput struct {
	SpendingID uuid.UUID
	UserID     uuid.UUID
	Title      *string
	Amount     *int64
	Date       *time.Time
}

// DeleteSpendingInput represents the input for deleting a spending.
type DeleteSpendingInput struct {
	SpendingID uuid.UUID
	UserID     uuid.UUID
}

// ListSpendingInput represents the input for listing a month of spending.
type ListSpendingInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthRange
}

// ListSpendingOutput represents the output of listing spending.
type ListSpendingOutput struct {
	Spending []*SpendingOutput
	Total    int64
}

// SpendingUseCase handles disposable spending CRUD.
type SpendingUseCase struct {
	spendingRepo adapter.DisposableSpendingRepository
}

// NewSpendingUseCase creates a new SpendingUseCase instance.
func NewSpendingUseCase(spendingRepo adapter.DisposableSpendingRepository) *SpendingUseCase {
	return &SpendingUseCase{
		spendingRepo: spendingRepo,
	}
}

// Create records a new spending.
func (uc *SpendingUseCase) Create(ctx context.Context, input CreateSpendingInput) (*SpendingOutput, error) {
	for _, err := range []error{
		validateTitle(input.Title),
		validateAmount(input.Amount),
		validateDate(input.Date),
	} {
		if err != nil {
			return nil, err
		}
	}

	spending := entity.NewDisposableSpending(input.UserID, input.Title, input.Amount, input.Date)
	if err := uc.spendingRepo.Create(ctx, spending); err != nil {
		return nil, fmt.Errorf("failed to create disposable spending: %w", err)
	}
	return toSpendingOutput(spending), nil
}

// Update edits an owned spending.
func (uc *SpendingUseCase) Update(ctx context.Context, input UpdateSpendingInput) (*SpendingOutput, error) {
	spending, err := uc.owned(ctx, input.SpendingID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		spending.Title = *input.Title
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		spending.Amount = *input.Amount
	}
	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		spending.Date = input.Date.UTC()
	}
	spending.UpdatedAt = time.Now().UTC()

	if err := uc.spendingRepo.Update(ctx, spending); err != nil {
		return nil, fmt.Errorf("failed to update disposable spending: %w", err)
	}
	return toSpendingOutput(spending), nil
}

// Delete removes an owned spending.
func (uc *SpendingUseCase) Delete(ctx context.Context, input DeleteSpendingInput) error {
	if _, err := uc.owned(ctx, input.SpendingID, input.UserID); err != nil {
		return err
	}
	if err := uc.spendingRepo.Delete(ctx, input.SpendingID); err != nil {
		return fmt.Errorf("failed to delete disposable spending: %w", err)
	}
	return nil
}

// List returns the user's spending in the month, oldest first.
func (uc *SpendingUseCase) List(ctx context.Context, input ListSpendingInput) (*ListSpendingOutput, error) {
	rows, err := uc.spendingRepo.FindByUserInRange(ctx, input.UserID, input.Month.Start, input.Month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list disposable spending: %w", err)
	}

	output := &ListSpendingOutput{
		Spending: make([]*SpendingOutput, 0, len(rows)),
	}
	for _, s := range rows {
		output.Spending = append(output.Spending, toSpendingOutput(s))
		output.Total += s.Amount
	}
	return output, nil
}

func (uc *SpendingUseCase) owned(ctx context.Context, id, userID uuid.UUID) (*entity.DisposableSpending, error) {
	spending, err := uc.spendingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, spendingLookupError(err)
	}
	if spending.UserID != userID {
		return nil, notAuthorized("spending")
	}
	return spending, nil
}
