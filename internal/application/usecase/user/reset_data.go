package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
)

// endOfTime is later than any date a ledger row can carry.
var endOfTime = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ResetDataInput identifies whose ledgers are wiped.
type ResetDataInput struct {
	UserID uuid.UUID
}

// ResetDataOutput counts the rows removed per ledger.
type ResetDataOutput struct {
	Income      int64
	Expenditure int64
	Budgets     int64
	Spending    int64
}

// Total returns the number of rows removed across all ledgers.
func (o ResetDataOutput) Total() int64 {
	return o.Income + o.Expenditure + o.Budgets + o.Spending
}

// ResetDataUseCase removes every income, expenditure, disposable budget and
// disposable spending row a user owns. The profile and currency preference
// are kept.
type ResetDataUseCase struct {
	entryRepo    adapter.EntryRepository
	budgetRepo   adapter.DisposableBudgetRepository
	spendingRepo adapter.DisposableSpendingRepository
	transactor   adapter.Transactor
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(
	entryRepo adapter.EntryRepository,
	budgetRepo adapter.DisposableBudgetRepository,
	spendingRepo adapter.DisposableSpendingRepository,
	transactor adapter.Transactor,
) *ResetDataUseCase {
	return &ResetDataUseCase{
		entryRepo:    entryRepo,
		budgetRepo:   budgetRepo,
		spendingRepo: spendingRepo,
		transactor:   transactor,
	}
}

// Execute wipes the user's ledgers in a single transaction.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) (*ResetDataOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	out := &ResetDataOutput{}
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if out.Income, err = uc.entryRepo.DeleteBefore(ctx, entity.EntryKindIncome, input.UserID, endOfTime); err != nil {
			return fmt.Errorf("failed to delete income: %w", err)
		}
		if out.Expenditure, err = uc.entryRepo.DeleteBefore(ctx, entity.EntryKindExpenditure, input.UserID, endOfTime); err != nil {
			return fmt.Errorf("failed to delete expenditure: %w", err)
		}
		if out.Budgets, err = uc.budgetRepo.DeleteBefore(ctx, input.UserID, endOfTime); err != nil {
			return fmt.Errorf("failed to delete disposable budgets: %w", err)
		}
		if out.Spending, err = uc.spendingRepo.DeleteBefore(ctx, input.UserID, endOfTime); err != nil {
			return fmt.Errorf("failed to delete disposable spending: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "User data reset",
		"user_id", input.UserID,
		"rows", out.Total(),
	)
	return out, nil
}
