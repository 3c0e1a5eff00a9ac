// Package disposable contains disposable budget and spending use cases.
package disposable

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
)

// MaxTitleLength is the maximum allowed length for spending titles.
const MaxTitleLength = 100

// BudgetOutput represents a disposable budget in the output.
type BudgetOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpendingOutput represents a disposable spending entry in the output.
type SpendingOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    int64
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toBudgetOutput(b *entity.DisposableBudget) *BudgetOutput {
	return &BudgetOutput{
		ID:        b.ID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		Date:      b.Date,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toSpendingOutput(s *entity.DisposableSpending) *SpendingOutput {
	return &SpendingOutput{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Amount:    s.Amount,
		Date:      s.Date,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 || n > MaxTitleLength {
		return domainerror.NewDisposableError(
			domainerror.ErrCodeInvalidDisposableTitle,
			fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
			nil,
		)
	}
	return nil
}

func validateAmount(amount int64) error {
	if amount < 0 {
		return domainerror.NewDisposableError(
			domainerror.ErrCodeInvalidDisposableAmount,
			"amount must not be negative",
			nil,
		)
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return domainerror.NewDisposableError(
			domainerror.ErrCodeInvalidDisposableDate,
			"date is required",
			nil,
		)
	}
	return nil
}

func notAuthorized(what string) error {
	return domainerror.NewDisposableError(
		domainerror.ErrCodeNotAuthorizedDisposable,
		"not authorized to modify this "+what,
		domainerror.ErrNotAuthorizedDisposable,
	)
}

func spendingLookupError(err error) error {
	if errors.Is(err, domainerror.ErrSpendingNotFound) {
		return domainerror.NewDisposableError(
			domainerror.ErrCodeSpendingNotFound,
			"disposable spending not found",
			domainerror.ErrSpendingNotFound,
		)
	}
	return fmt.Errorf("failed to find disposable spending: %w", err)
}
