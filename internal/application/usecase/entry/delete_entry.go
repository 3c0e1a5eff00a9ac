// Package entry contains income and expenditure use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
	"github.com/sft-api/backend/internal/domain/entity"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
	Kind    entity.EntryKind
}

// DeleteEntryOutput represents the output of entry deletion.
type DeleteEntryOutput struct {
	Deleted int64
}

// DeleteEntryUseCase handles entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo   adapter.EntryRepository
	transactor  adapter.Transactor
	coordinator *recurrence.Coordinator
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(
	entryRepo adapter.EntryRepository,
	transactor adapter.Transactor,
	coordinator *recurrence.Coordinator,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo:   entryRepo,
		transactor:  transactor,
		coordinator: coordinator,
	}
}

// Execute deletes the entry and, for a series member, every later occurrence.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	var deleted int64
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := uc.entryRepo.FindByID(ctx, input.Kind, input.EntryID)
		if err != nil {
			return notFound(err)
		}
		if entry.UserID != input.UserID {
			return notOwner("delete")
		}

		deleted, err = uc.coordinator.OnDelete(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteEntryOutput{
		Deleted: deleted,
	}, nil
}
