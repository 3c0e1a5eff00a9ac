// Package entry contains income and expenditure use cases.
package entry

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

// MaxTitleLength is the maximum allowed length for entry titles.
const MaxTitleLength = 100

// EntryOutput represents a single income or expenditure in the output.
type EntryOutput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          entity.EntryKind
	Title         string
	Amount        int64
	Date          time.Time
	Repeated      entity.RepeatFrequency
	RepeatGroupID *uuid.UUID
	Type          *entity.ExpenditureType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toEntryOutput(e *entity.RecurringEntry) *EntryOutput {
	return &EntryOutput{
		ID:            e.ID,
		UserID:        e.UserID,
		Kind:          e.Kind,
		Title:         e.Title,
		Amount:        e.Amount,
		Date:          e.Date,
		Repeated:      e.Repeated,
		RepeatGroupID: e.RepeatGroupID,
		Type:          e.Category,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func validateKind(kind entity.EntryKind) error {
	if kind != entity.EntryKindIncome && kind != entity.EntryKindExpenditure {
		return domainerror.ErrUnknownEntryKind
	}
	return nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 || n > MaxTitleLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryTitle,
			fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
			domainerror.ErrInvalidEntryTitle,
		)
	}
	return nil
}

func validateAmount(amount int64) error {
	if amount < 0 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must not be negative",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}
	return nil
}

func validateFrequency(repeated entity.RepeatFrequency) error {
	if !repeated.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidRepeatFrequency,
			"repeated must be one of NEVER, DAILY, WEEKLY, MONTHLY",
			domainerror.ErrInvalidRepeatFrequency,
		)
	}
	return nil
}

func validateType(t *entity.ExpenditureType) error {
	if t != nil && !t.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidExpenditureType,
			"type must be one of BILL, SAVING, INVESTMENT",
			domainerror.ErrInvalidExpenditureType,
		)
	}
	return nil
}

// notFound converts a repository miss into a coded error and wraps anything else.
func notFound(err error) error {
	if errors.Is(err, domainerror.ErrEntryNotFound) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	return fmt.Errorf("failed to find entry: %w", err)
}

func notOwner(action string) error {
	return domainerror.NewEntryError(
		domainerror.ErrCodeNotAuthorizedEntry,
		"not authorized to "+action+" this entry",
		domainerror.ErrNotAuthorizedToModifyEntry,
	)
}
