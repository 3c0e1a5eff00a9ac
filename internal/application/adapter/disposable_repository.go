// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// DisposableBudgetRepository defines persistence operations for disposable budgets.
type DisposableBudgetRepository interface {
	// Create inserts a new budget.
	Create(ctx context.Context, budget *entity.DisposableBudget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableBudget, error)

	// FindForMonth retrieves the user's budget dated inside [start, end).
	FindForMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.DisposableBudget, error)

	// Update saves an existing budget.
	Update(ctx context.Context, budget *entity.DisposableBudget) error

	// DeleteBefore hard-deletes a user's budgets dated strictly before cutoff.
	DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error)
}

// DisposableSpendingRepository defines persistence operations for disposable spending.
type DisposableSpendingRepository interface {
	// Create inserts a new spending entry.
	Create(ctx context.Context, spending *entity.DisposableSpending) error

	// FindByID retrieves a spending entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableSpending, error)

	// FindByUserInRange lists a user's spending dated inside [start, end), oldest first.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DisposableSpending, error)

	// Update saves an existing spending entry.
	Update(ctx context.Context, spending *entity.DisposableSpending) error

	// Delete removes a spending entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBefore hard-deletes a user's spending dated strictly before cutoff.
	DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error)

	// SumInRange sums a user's spending dated inside [start, end).
	SumInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error)
}
