// Package entry contains income and expenditure use cases.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// UpdateEntryInput represents the input for entry update. Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID  uuid.UUID
	UserID   uuid.UUID
	Kind     entity.EntryKind
	Title    *string
	Amount   *int64
	Date     *time.Time
	Repeated *entity.RepeatFrequency
	Type     *entity.ExpenditureType
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *EntryOutput
	Case  recurrence.UpdateCase
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo   adapter.EntryRepository
	transactor  adapter.Transactor
	coordinator *recurrence.Coordinator
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	entryRepo adapter.EntryRepository,
	transactor adapter.Transactor,
	coordinator *recurrence.Coordinator,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo:   entryRepo,
		transactor:  transactor,
		coordinator: coordinator,
	}
}

// Execute applies the update and reconciles the entry's series.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
	}
	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
	}
	if input.Repeated != nil {
		if err := validateFrequency(*input.Repeated); err != nil {
			return nil, err
		}
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}

	var (
		updated    *entity.RecurringEntry
		updateCase recurrence.UpdateCase
	)
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := uc.entryRepo.FindByID(ctx, input.Kind, input.EntryID)
		if err != nil {
			return notFound(err)
		}
		if entry.UserID != input.UserID {
			return notOwner("update")
		}

		original := entry.Snapshot()
		applyUpdate(entry, input)

		// A row leaving its series drops the group before the save, so the
		// (user, group, date) index cannot reject a move onto a sibling's date.
		if original.IsInSeries() &&
			(!valueobject.SameDay(entry.Date, original.Date) || entry.Repeated != original.Repeated) {
			entry.RepeatGroupID = nil
		}

		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		updateCase, err = uc.coordinator.OnUpdate(ctx, original, entry)
		if err != nil {
			return fmt.Errorf("failed to reconcile series: %w", err)
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Entry updated",
		"entry_id", updated.ID,
		"kind", updated.Kind,
		"case", updateCase,
	)

	return &UpdateEntryOutput{
		Entry: toEntryOutput(updated),
		Case:  updateCase,
	}, nil
}

func applyUpdate(entry *entity.RecurringEntry, input UpdateEntryInput) {
	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = input.Date.UTC()
	}
	if input.Repeated != nil {
		entry.Repeated = *input.Repeated
	}
	if input.Type != nil && entry.HasCategory() {
		t := *input.Type
		entry.Category = &t
	}
	entry.UpdatedAt = time.Now().UTC()
}
